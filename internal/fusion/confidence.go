package fusion

import "gonum.org/v1/gonum/stat"

// EstimateConfidence converts source reliability, corroboration and
// measurement dispersion into a single confidence score in [0, 1].
//
//   - base: mean reliability weight of the samples that survived outlier
//     filtering.
//   - corroboration bonus: per group member, capped. Independent sources
//     agreeing on a room is worth more than any single source.
//   - dispersion penalty: scaled coefficient of variation of the filtered
//     lengths, capped. A single surviving sample takes a fixed penalty
//     instead: an uncorroborated measurement is inherently less
//     trustworthy even with zero variance.
//
// groupSize is the number of group members before filtering, including
// members that contributed no usable dimensions.
func EstimateConfidence(cfg ConfidenceConfig, lengths, weights []float64, groupSize int) float64 {
	if len(lengths) == 0 {
		return 0
	}

	base := stat.Mean(weights, nil)

	bonus := cfg.SourceBonusPerSource * float64(groupSize)
	if bonus > cfg.SourceBonusMax {
		bonus = cfg.SourceBonusMax
	}

	var penalty float64
	if len(lengths) > 1 {
		mean := stat.Mean(lengths, nil)
		cv := 0.0
		if mean > 0 {
			cv = stat.PopStdDev(lengths, nil) / mean
		}
		penalty = cfg.VariancePenaltyScale * cv
		if penalty > cfg.VariancePenaltyMax {
			penalty = cfg.VariancePenaltyMax
		}
	} else {
		penalty = cfg.SingleSamplePenalty
	}

	confidence := base + bonus - penalty
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
