// Package dataset читает CSV выгрузку Zomato и приводит её к очищенному набору записей.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyDataset возвращается, если во входных данных нет даже заголовка.
var ErrEmptyDataset = errors.New("dataset is empty")

// Table представляет таблицу строковых значений с именованными колонками.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index возвращает позицию колонки или -1, если колонки нет.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Len возвращает число строк.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Value возвращает значение ячейки по номеру строки и имени колонки.
func (t *Table) Value(row int, column string) (string, bool) {
	idx := t.Index(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][idx], true
}

// AddColumn добавляет колонку, вычисляя значение для каждой строки.
func (t *Table) AddColumn(name string, fn func(row []string) (string, error)) error {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		v, err := fn(row)
		if err != nil {
			return fmt.Errorf("column %s, row %d: %w", name, i+1, err)
		}
		values[i] = v
	}

	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// DropColumn удаляет колонку. Отсутствующая колонка игнорируется.
func (t *Table) DropColumn(name string) {
	idx := t.Index(name)
	if idx < 0 {
		return
	}

	t.Columns = append(t.Columns[:idx:idx], t.Columns[idx+1:]...)
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:idx:idx], row[idx+1:]...)
	}
}

// Filter оставляет только строки, для которых keep возвращает true.
func (t *Table) Filter(keep func(row []string) bool) {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	t.Rows = kept
}

// Clone возвращает глубокую копию таблицы.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// ReadCSV читает CSV с заголовком в первой строке.
// Строки с другим числом полей считаются ошибкой.
func ReadCSV(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return &Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
