// Package report renders an HTML chart of a fusion run using go-echarts.
//
// The chart shows per-room fused floor area with a second axis for the
// fusion confidence, so low-confidence or failed-validation rooms stand
// out at a glance before the result feeds material estimation.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/roomsense-data/roomfusion/internal/fusion"
)

// WriteChart renders a fusion result as a standalone HTML bar chart.
func WriteChart(w io.Writer, result *fusion.Result) error {
	if result == nil || !result.Success {
		return fmt.Errorf("cannot chart an unsuccessful fusion result")
	}

	names := make([]string, 0, len(result.Rooms))
	areas := make([]opts.BarData, 0, len(result.Rooms))
	confidences := make([]opts.BarData, 0, len(result.Rooms))
	for _, room := range result.Rooms {
		label := room.Name
		if !room.Fusion.Validation.Passed {
			label += " ⚠"
		}
		names = append(names, label)
		areas = append(areas, opts.BarData{Value: room.Dimensions.AreaSqm})
		confidences = append(confidences, opts.BarData{Value: room.Fusion.Confidence})
	}

	subtitle := fmt.Sprintf("rooms=%d total_area=%.1fm² overall_confidence=%.2f",
		result.Building.TotalRooms,
		result.Building.TotalFloorAreaSqm,
		result.Metadata.OverallConfidence,
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Room Fusion Report", Width: "1100px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: result.Building.Name, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Area (m²)"}),
	)
	bar.ExtendYAxis(opts.YAxis{Name: "Confidence", Min: 0, Max: 1})

	bar.SetXAxis(names).
		AddSeries("area", areas).
		AddSeries("confidence", confidences, charts.WithBarChartOpts(opts.BarChart{YAxisIndex: 1}))

	return bar.Render(w)
}
