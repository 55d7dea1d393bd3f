// Package chart renders a week of habit values as an HTML page of bar charts.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/julianstephens/wellfit/internal/models"
)

// WeekBar builds one bar chart for kind with its goal drawn as a mark line.
func WeekBar(data *models.WeeklyData, kind models.HabitKind, goal int) *charts.Bar {
	series := data.SeriesFor(kind)

	labels := make([]string, len(series))
	values := make([]opts.BarData, len(series))
	for i, e := range series {
		labels[i] = models.DayLabels[i]
		values[i] = opts.BarData{Name: e.Day, Value: e.Value}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Habits",
			Width:     "800px",
			Height:    "320px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    kind.Title(),
			Subtitle: fmt.Sprintf("Week of %s, goal %d", data.WeekStart, goal),
		}),
	)
	bar.SetXAxis(labels).
		AddSeries(string(kind), values,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "goal", YAxis: goal}),
		)
	return bar
}

// RenderWeek writes one chart per habit to w.
func RenderWeek(w io.Writer, data *models.WeeklyData, goals models.Goals) error {
	page := components.NewPage()
	page.PageTitle = "Week of " + data.WeekStart
	for _, kind := range models.AllHabitKinds {
		page.AddCharts(WeekBar(data, kind, goals.Get(kind)))
	}
	return page.Render(w)
}

// WriteWeekFile renders the week into an HTML file at path.
func WriteWeekFile(path string, data *models.WeeklyData, goals models.Goals) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderWeek(f, data, goals); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
