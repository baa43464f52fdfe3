// Package fusion implements the multi-source room measurement fusion
// engine.
//
// Four independent sensing pipelines (floor-plan analysis, AR/depth
// capture, transcribed speech, photo estimation) each produce candidate
// room lists for the same building. The engine decides which candidates
// across sources denote the same physical room, fuses their conflicting
// dimension estimates into one value per axis, scores how much the result
// can be trusted, and validates the fused dimensions against regulatory
// minimums.
//
// Pipeline per fusion run:
//
//	match rooms across sources (greedy, anchor-source priority)
//	  → z-score outlier rejection per group
//	  → reliability-weighted averaging per axis
//	  → confidence estimation (reliability + corroboration − dispersion)
//	  → standards validation
//	  → building-level aggregation
//
// All thresholds, reliability weights and the standards table are
// configuration data (see Config); the engine carries no tunable
// literals.
package fusion
