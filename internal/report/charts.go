package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

// renderCharts writes both stacked bar charts onto a single HTML page.
func renderCharts(w io.Writer, res pipeline.Result) error {
	page := components.NewPage()
	page.PageTitle = "Storm Impact Report"
	page.AddCharts(
		healthChart(res.Health, res.StartYear),
		economyChart(res.Economy, res.StartYear),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}

// healthChart stacks fatalities and injuries per event type.
func healthChart(rows []domain.HealthImpact, startYear int) *charts.Bar {
	types := make([]string, len(rows))
	fatalities := make([]opts.BarData, len(rows))
	injuries := make([]opts.BarData, len(rows))
	for i, r := range rows {
		types[i] = r.EventType
		fatalities[i] = opts.BarData{Value: r.Fatalities}
		injuries[i] = opts.BarData{Value: r.Injuries}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Most harmful event types",
			Subtitle: fmt.Sprintf("Casualties, events after %d", startYear),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
	)
	bar.SetXAxis(types).
		AddSeries("Fatalities", fatalities).
		AddSeries("Injuries", injuries).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "casualties"}))
	return bar
}

// economyChart stacks property and crop damage per event type, in billions
// of USD so the axis stays readable.
func economyChart(rows []domain.EconomicImpact, startYear int) *charts.Bar {
	const billion = 1e9

	types := make([]string, len(rows))
	property := make([]opts.BarData, len(rows))
	crop := make([]opts.BarData, len(rows))
	for i, r := range rows {
		types[i] = r.EventType
		property[i] = opts.BarData{Value: r.PropertyDamage / billion}
		crop[i] = opts.BarData{Value: r.CropDamage / billion}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Costliest event types",
			Subtitle: fmt.Sprintf("Damage in billions of USD, events after %d", startYear),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
	)
	bar.SetXAxis(types).
		AddSeries("Property damage", property).
		AddSeries("Crop damage", crop).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "damage"}))
	return bar
}
