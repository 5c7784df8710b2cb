package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// render writes the result as an HTML page of line charts
func render(res *Result, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "gwplot"

	if len(res.Times) > 0 {
		page.AddCharts(lineChart("Polarisations", "t [s]", "strain", res.Times,
			series{"h+", res.Plus}, series{"hx", res.Cross}))
		page.AddCharts(lineChart("Single-sided spectrum of tapered h+", "f [Hz]", "|h+(f)| [1/Hz]",
			res.Frequencies, series{"|h+(f)|", res.Amplitude}))
	}

	idx := make([]float64, len(res.Window))
	for i := range idx {
		idx[i] = float64(i)
	}
	page.AddCharts(lineChart(fmt.Sprintf("%s window", res.WindowType), "sample", "weight",
		idx, series{res.WindowType, res.Window}))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

type series struct {
	name   string
	values []float64
}

func lineChart(title, xName, yName string, x []float64, ys ...series) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
	)

	line.SetXAxis(x)
	for _, s := range ys {
		data := make([]opts.LineData, len(s.values))
		for i, v := range s.values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.name, data)
	}
	return line
}
