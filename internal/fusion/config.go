package fusion

import "github.com/roomsense-data/roomfusion/internal/standards"

// MatcherConfig holds the cross-source room matching parameters.
type MatcherConfig struct {
	TypeMatchWeight   float64 // Score contribution for an exact, known room-type match
	AreaWeight        float64 // Maximum score contribution from area similarity
	MaxAreaDifference float64 // Relative area difference gate; beyond it area contributes nothing
	AcceptThreshold   float64 // Minimum score for a candidate to be bound to a group
}

// OutlierConfig holds the z-score outlier filter parameters.
type OutlierConfig struct {
	MinSamples   int     // Below this many samples the filter is a no-op
	ZScoreCutoff float64 // Samples with |z| >= cutoff are discarded
}

// ConfidenceConfig holds the confidence estimator parameters.
type ConfidenceConfig struct {
	SourceBonusPerSource float64 // Bonus per corroborating group member
	SourceBonusMax       float64 // Cap on the corroboration bonus
	VariancePenaltyScale float64 // Penalty per unit coefficient of variation
	VariancePenaltyMax   float64 // Cap on the dispersion penalty
	SingleSamplePenalty  float64 // Fixed penalty when only one sample survives filtering
}

// ValidatorConfig holds the sanity ceilings applied after the per-type
// minimums.
type ValidatorConfig struct {
	MaxAreaSqm float64 // Areas above this are rejected as implausible
	MaxHeightM float64 // Heights above this are rejected as implausible
}

// Config is the complete engine configuration. All fusion behaviour is
// driven by this structure; the engine itself carries no tunable literals,
// so tests can substitute alternate weights and standards without touching
// logic.
type Config struct {
	// SourceWeights are the fixed reliability weights per sensing
	// pipeline. Sources absent from the map get DefaultSourceWeight.
	SourceWeights       map[Source]float64
	DefaultSourceWeight float64

	// DefaultCeilingHeightMM substitutes for a missing height measurement.
	// Most capture pipelines only measure the floor plane.
	DefaultCeilingHeightMM float64

	Matcher    MatcherConfig
	Outlier    OutlierConfig
	Confidence ConfidenceConfig
	Validator  ValidatorConfig
	Standards  standards.Catalog
}

// DefaultConfig returns the production fusion configuration.
func DefaultConfig() Config {
	return Config{
		SourceWeights: map[Source]float64{
			SourceAR:        0.9, // Highest accuracy (LiDAR/depth sensors)
			SourceFloorPlan: 0.7, // High accuracy if professional plan
			SourcePhotos:    0.6, // Medium accuracy (depth estimation)
			SourceVoice:     0.5, // Lowest (human memory errors)
		},
		DefaultSourceWeight:    0.5,
		DefaultCeilingHeightMM: 3000,
		Matcher: MatcherConfig{
			TypeMatchWeight:   0.6,
			AreaWeight:        0.4,
			MaxAreaDifference: 0.3,
			AcceptThreshold:   0.4,
		},
		Outlier: OutlierConfig{
			MinSamples:   3,
			ZScoreCutoff: 2.0,
		},
		Confidence: ConfidenceConfig{
			SourceBonusPerSource: 0.1,
			SourceBonusMax:       0.3,
			VariancePenaltyScale: 0.2,
			VariancePenaltyMax:   0.3,
			SingleSamplePenalty:  0.1,
		},
		Validator: ValidatorConfig{
			MaxAreaSqm: 100.0,
			MaxHeightM: 5.0,
		},
		Standards: standards.DefaultCatalog(),
	}
}

// weightFor returns the reliability weight for a source.
func (c Config) weightFor(s Source) float64 {
	if w, ok := c.SourceWeights[s]; ok {
		return w
	}
	return c.DefaultSourceWeight
}
