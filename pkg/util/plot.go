package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mooptim/ibmols/pkg/framework"
)

// PlotFront renders a scatter plot of an approximated Pareto front,
// optionally overlaid with a reference front, as a standalone HTML file.
func PlotFront(front []framework.ObjectiveSpacePoint, reference []framework.ObjectiveSpacePoint, title, outputPath string) error {
	if len(front) == 0 {
		return fmt.Errorf("front is empty for %s", title)
	}
	if len(front[0]) != 2 {
		return fmt.Errorf("can only plot 2D fronts, %s has %d objectives", title, len(front[0]))
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "profit 1",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "profit 2",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	if len(reference) > 0 {
		refData := make([]opts.ScatterData, len(reference))
		for i, p := range reference {
			refData[i] = opts.ScatterData{
				Value:      []float64{p[0], p[1]},
				Symbol:     "circle",
				SymbolSize: 3,
			}
		}
		scatter.AddSeries("Reference Front", refData)
	}

	frontData := make([]opts.ScatterData, len(front))
	for i, p := range front {
		frontData[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     "triangle",
			SymbolSize: 8,
		}
	}
	scatter.AddSeries("Archive Front", frontData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
