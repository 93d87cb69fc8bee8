package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

func TestFromGroupValues(t *testing.T) {
	vs := []models.GroupValue{
		{Key: "Rio", Group: "Brazil", Value: 2},
		{Key: "London", Group: "England", Value: 1},
	}

	plain := FromGroupValues(vs, false)
	assert.Equal(t, "Rio", plain[0].Label)

	grouped := FromGroupValues(vs, true)
	assert.Equal(t, "Rio (Brazil)", grouped[0].Label)
	assert.Equal(t, "England", grouped[1].Group)
}

func TestGroupColors(t *testing.T) {
	bars := []Bar{{Group: "Brazil"}, {Group: "England"}, {Group: "Brazil"}}
	colors := GroupColors(bars)

	require.Len(t, colors, 2)
	assert.Equal(t, Palette[0], colors["Brazil"])
	assert.Equal(t, Palette[1], colors["England"])
}

func TestRender_SVG(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Spec{
		Title:        "Restaurantes por país",
		Bars:         []Bar{{Label: "Brazil", Group: "R$", Value: 3}, {Label: "England", Group: "£", Value: 2}},
		ColorByGroup: true,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestRender_AxisTitlesAndLegend(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Spec{
		Title:       "Cost by country",
		XLabel:      "Country",
		YLabel:      "Average cost",
		LegendTitle: "Currency",
		Bars: []Bar{
			{Label: "Brazil", Group: "BRL", Value: 3},
			{Label: "England", Group: "GBP", Value: 2},
			{Label: "Scotland", Group: "GBP", Value: 1},
		},
		ColorByGroup: true,
	})
	require.NoError(t, err)

	svg := buf.String()
	assert.Contains(t, svg, ">Country</text>")
	assert.Contains(t, svg, ">Average cost</text>")
	assert.Contains(t, svg, ">Currency</text>")
	assert.Equal(t, 1, strings.Count(svg, ">BRL</text>"))
	assert.Equal(t, 1, strings.Count(svg, ">GBP</text>"), "one legend entry per group")
}

func TestRender_NoLegendForSingleColor(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Spec{
		Title:       "Restaurants by country",
		LegendTitle: "Currency",
		Bars:        []Bar{{Label: "Brazil", Group: "BRL", Value: 3}},
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), ">Currency</text>")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Spec{Title: "Vazio"}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestWidth(t *testing.T) {
	assert.Equal(t, minWidth, Width(1))
	assert.Greater(t, Width(40), minWidth)
}
