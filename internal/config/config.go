// Package config loads engine tuning parameters from JSON files.
//
// A tuning file overrides individual fields of the default fusion
// configuration; every field is optional, so partial files are safe. This
// keeps the reliability weights and thresholds out of code for
// per-deployment calibration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roomsense-data/roomfusion/internal/fusion"
)

// maxConfigFileSize caps tuning files at 1MB.
const maxConfigFileSize = 1 * 1024 * 1024

// TuningConfig mirrors fusion.Config with optional fields. Fields omitted
// from the JSON file leave the corresponding default untouched.
type TuningConfig struct {
	// Source reliability
	SourceWeights       map[string]float64 `json:"source_weights,omitempty"`
	DefaultSourceWeight *float64           `json:"default_source_weight,omitempty"`

	DefaultCeilingHeightMM *float64 `json:"default_ceiling_height_mm,omitempty"`

	// Matcher params
	TypeMatchWeight   *float64 `json:"type_match_weight,omitempty"`
	AreaWeight        *float64 `json:"area_weight,omitempty"`
	MaxAreaDifference *float64 `json:"max_area_difference,omitempty"`
	AcceptThreshold   *float64 `json:"accept_threshold,omitempty"`

	// Outlier filter params
	OutlierMinSamples *int     `json:"outlier_min_samples,omitempty"`
	ZScoreCutoff      *float64 `json:"z_score_cutoff,omitempty"`

	// Confidence params
	SourceBonusPerSource *float64 `json:"source_bonus_per_source,omitempty"`
	SourceBonusMax       *float64 `json:"source_bonus_max,omitempty"`
	VariancePenaltyScale *float64 `json:"variance_penalty_scale,omitempty"`
	VariancePenaltyMax   *float64 `json:"variance_penalty_max,omitempty"`
	SingleSamplePenalty  *float64 `json:"single_sample_penalty,omitempty"`

	// Validator ceilings
	MaxAreaSqm *float64 `json:"max_area_sqm,omitempty"`
	MaxHeightM *float64 `json:"max_height_m,omitempty"`
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must
// have a .json extension and be under the max file size.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var tc TuningConfig
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &tc, nil
}

// Apply overlays the tuning values onto a fusion configuration. Only
// fields present in the tuning file are changed.
func (tc *TuningConfig) Apply(cfg *fusion.Config) {
	for source, weight := range tc.SourceWeights {
		cfg.SourceWeights[fusion.Source(source)] = weight
	}
	if tc.DefaultSourceWeight != nil {
		cfg.DefaultSourceWeight = *tc.DefaultSourceWeight
	}
	if tc.DefaultCeilingHeightMM != nil {
		cfg.DefaultCeilingHeightMM = *tc.DefaultCeilingHeightMM
	}
	if tc.TypeMatchWeight != nil {
		cfg.Matcher.TypeMatchWeight = *tc.TypeMatchWeight
	}
	if tc.AreaWeight != nil {
		cfg.Matcher.AreaWeight = *tc.AreaWeight
	}
	if tc.MaxAreaDifference != nil {
		cfg.Matcher.MaxAreaDifference = *tc.MaxAreaDifference
	}
	if tc.AcceptThreshold != nil {
		cfg.Matcher.AcceptThreshold = *tc.AcceptThreshold
	}
	if tc.OutlierMinSamples != nil {
		cfg.Outlier.MinSamples = *tc.OutlierMinSamples
	}
	if tc.ZScoreCutoff != nil {
		cfg.Outlier.ZScoreCutoff = *tc.ZScoreCutoff
	}
	if tc.SourceBonusPerSource != nil {
		cfg.Confidence.SourceBonusPerSource = *tc.SourceBonusPerSource
	}
	if tc.SourceBonusMax != nil {
		cfg.Confidence.SourceBonusMax = *tc.SourceBonusMax
	}
	if tc.VariancePenaltyScale != nil {
		cfg.Confidence.VariancePenaltyScale = *tc.VariancePenaltyScale
	}
	if tc.VariancePenaltyMax != nil {
		cfg.Confidence.VariancePenaltyMax = *tc.VariancePenaltyMax
	}
	if tc.SingleSamplePenalty != nil {
		cfg.Confidence.SingleSamplePenalty = *tc.SingleSamplePenalty
	}
	if tc.MaxAreaSqm != nil {
		cfg.Validator.MaxAreaSqm = *tc.MaxAreaSqm
	}
	if tc.MaxHeightM != nil {
		cfg.Validator.MaxHeightM = *tc.MaxHeightM
	}
}
