// Package charts рисует столбчатые диаграммы дашборда в SVG с помощью go-chart.
package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

const (
	defaultHeight = 520
	minWidth      = 720
	barWidth      = 36
	barSpacing    = 18
	emptyLabel    = "sem dados"
	legendWidth   = 150
	legendRow     = 18
	labelFontSize = 12
)

// SingleColor - цвет столбцов диаграмм без легенды (indianred).
var SingleColor = drawing.ColorFromHex("cd5c5c")

// Palette - цвета столбцов, различаемых по группе.
var Palette = []drawing.Color{
	drawing.ColorFromHex("9370db"), // mediumpurple
	drawing.ColorFromHex("cd5c5c"), // indianred
	drawing.ColorFromHex("3cb371"), // mediumseagreen
	drawing.ColorFromHex("87cefa"), // lightskyblue
	drawing.ColorFromHex("ffc0cb"), // pink
	drawing.ColorFromHex("fdf5e6"), // oldlace
	drawing.ColorFromHex("adff2f"), // greenyellow
	drawing.ColorFromHex("ffa500"), // orange
	drawing.ColorFromHex("e9967a"), // darksalmon
	drawing.ColorFromHex("66cdaa"), // mediumaquamarine
	drawing.ColorFromHex("fff0f5"), // lavenderblush
	drawing.ColorFromHex("b0e0e6"), // powderblue
	drawing.ColorFromHex("f0e68c"), // khaki
	drawing.ColorFromHex("ff1493"), // deeppink
	drawing.ColorFromHex("4169e1"), // royalblue
}

// Bar - один столбец диаграммы.
type Bar struct {
	Label string
	Group string
	Value float64
}

// Spec описывает диаграмму.
type Spec struct {
	Title        string
	TitleSize    float64
	XLabel       string
	YLabel       string
	LegendTitle  string // Заголовок легенды групп, только при ColorByGroup
	Bars         []Bar
	ColorByGroup bool // Цвет столбца по Group, иначе SingleColor
}

// FromGroupValues превращает агрегат в столбцы. Если withGroup, подпись дополняется группой.
func FromGroupValues(vs []models.GroupValue, withGroup bool) []Bar {
	bars := make([]Bar, 0, len(vs))
	for _, v := range vs {
		label := v.Key
		if withGroup && v.Group != "" {
			label = fmt.Sprintf("%s (%s)", v.Key, v.Group)
		}
		bars = append(bars, Bar{Label: label, Group: v.Group, Value: v.Value})
	}
	return bars
}

// GroupColors назначает цвета палитры группам в порядке первого появления.
func GroupColors(bars []Bar) map[string]drawing.Color {
	colors := map[string]drawing.Color{}
	for _, b := range bars {
		if _, ok := colors[b.Group]; ok {
			continue
		}
		colors[b.Group] = Palette[len(colors)%len(Palette)]
	}
	return colors
}

// Render рисует диаграмму в SVG. Пустой набор столбцов рисуется как заглушка.
func Render(w io.Writer, spec Spec) error {
	graph := build(spec)
	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("failed to render chart %q: %w", spec.Title, err)
	}
	return nil
}

func build(spec Spec) chart.BarChart {
	bars := spec.Bars
	if len(bars) == 0 {
		bars = []Bar{{Label: emptyLabel}}
	}

	colors := GroupColors(bars)
	maxValue := 0.0
	values := make([]chart.Value, 0, len(bars))
	for _, b := range bars {
		color := SingleColor
		if spec.ColorByGroup {
			color = colors[b.Group]
		}
		if b.Value > maxValue {
			maxValue = b.Value
		}
		values = append(values, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1},
		})
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	titleSize := spec.TitleSize
	if titleSize == 0 {
		titleSize = 16
	}

	left, width := 16, Width(len(values))
	showLegend := spec.ColorByGroup && len(spec.Bars) > 0
	if showLegend {
		left += legendWidth
		width += legendWidth
	}

	graph := chart.BarChart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontSize: titleSize},
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: left, Right: 48, Bottom: 120}},
		Width:      width,
		Height:     defaultHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		XAxis:      chart.Style{TextRotationDegrees: 45.0},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: values,
	}

	graph.Elements = append(graph.Elements, axisTitles(spec.XLabel, spec.YLabel, width, defaultHeight))
	if showLegend {
		graph.Elements = append(graph.Elements, legend(spec.LegendTitle, bars, colors))
	}
	return graph
}

// axisTitles подписывает ось X под столбцами и ось Y справа от шкалы.
func axisTitles(xLabel, yLabel string, width, height int) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		style := chart.Style{
			Font:      defaults.Font,
			FontSize:  labelFontSize,
			FontColor: drawing.ColorBlack,
		}

		if xLabel != "" {
			tb := chart.Draw.MeasureText(r, xLabel, style)
			x := canvas.Left + (canvas.Width()-tb.Width())/2
			chart.Draw.Text(r, xLabel, x, height-12, style)
		}

		if yLabel != "" {
			tb := chart.Draw.MeasureText(r, yLabel, style)
			rotated := style
			rotated.TextRotationDegrees = 90
			y := canvas.Top + (canvas.Height()-tb.Width())/2
			chart.Draw.Text(r, yLabel, width-16, y, rotated)
		}
	}
}

// legend рисует список групп с их цветами в левом поле диаграммы.
func legend(title string, bars []Bar, colors map[string]drawing.Color) chart.Renderable {
	var groups []string
	seen := map[string]bool{}
	for _, b := range bars {
		if seen[b.Group] {
			continue
		}
		seen[b.Group] = true
		groups = append(groups, b.Group)
	}

	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		text := chart.Style{
			Font:      defaults.Font,
			FontSize:  labelFontSize,
			FontColor: drawing.ColorBlack,
		}

		x := 16
		y := canvas.Top
		if title != "" {
			chart.Draw.Text(r, title, x, y+labelFontSize, text)
			y += legendRow + 4
		}

		for _, g := range groups {
			if y+legendRow > canvas.Bottom {
				break
			}
			swatch := chart.Style{FillColor: colors[g], StrokeColor: colors[g], StrokeWidth: 1}
			chart.Draw.Box(r, chart.Box{Top: y, Left: x, Right: x + 12, Bottom: y + 12}, swatch)
			chart.Draw.Text(r, g, x+18, y+11, text)
			y += legendRow
		}
	}
}

// Width подбирает ширину холста под число столбцов.
func Width(bars int) int {
	w := bars*(barWidth+barSpacing) + 160
	if w < minWidth {
		return minWidth
	}
	return w
}
