package fusion

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// FilterOutliers removes measurement tuples whose length is statistically
// inconsistent with the rest of the group.
//
// The z-score of each length against the population mean and standard
// deviation of all lengths decides survival; the resulting index mask is
// applied unchanged to widths, heights and weights. Length drives the mask
// because it is the most consistently defined measurement across sources;
// width and height are deliberately not filtered independently, even
// though their noise may be uncorrelated with length.
//
// With fewer than cfg.MinSamples tuples the input is returned unchanged:
// too little data to call anything an outlier. A zero standard deviation
// (all lengths equal) keeps every tuple. The filter always retains at
// least one tuple for non-empty input, since the sample nearest the mean
// has |z| below any positive cutoff.
func FilterOutliers(cfg OutlierConfig, lengths, widths, heights, weights []float64) (l, w, h, wt []float64) {
	if len(lengths) < cfg.MinSamples {
		return lengths, widths, heights, weights
	}

	mean := stat.Mean(lengths, nil)
	std := stat.PopStdDev(lengths, nil)
	if std == 0 {
		return lengths, widths, heights, weights
	}

	for i, v := range lengths {
		z := math.Abs(v-mean) / std
		if z < cfg.ZScoreCutoff {
			l = append(l, v)
			w = append(w, widths[i])
			h = append(h, heights[i])
			wt = append(wt, weights[i])
		}
	}
	return l, w, h, wt
}
