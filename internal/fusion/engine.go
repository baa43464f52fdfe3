package fusion

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/roomsense-data/roomfusion/internal/units"
)

// Engine fuses candidate room measurements from multiple sensing pipelines
// into one authoritative record per room.
//
// An Engine is a pure, synchronous computation over in-memory data: it
// holds only immutable configuration and a logger, so a single Engine may
// serve concurrent Fuse calls without coordination.
type Engine struct {
	cfg Config
	log *zap.Logger
}

// NewEngine creates a fusion engine. A nil logger disables logging.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, log: logger}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Fuse runs the full fusion pipeline: match rooms across sources, fuse
// each group's measurements, validate the results and aggregate
// building-level totals.
//
// Failures local to one room (unusable dimensions, empty groups) are
// recovered in place: the room is dropped or flagged and the run succeeds.
// Only a failure that corrupts the whole run's bookkeeping, surfaced as a
// panic, propagates, in which case the returned result carries
// Success=false and no partial building data.
func (e *Engine) Fuse(in *Input) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fusion failed: %v", r)
			e.log.Error("fusion run aborted", zap.Any("panic", r))
			res = &Result{Success: false, Error: err.Error()}
		}
	}()

	if in == nil {
		return &Result{Success: false, Error: "nil fusion input"}, errors.New("nil fusion input")
	}

	e.log.Info("starting multi-source measurement fusion",
		zap.Int("floor_plan_rooms", len(in.FloorPlan)),
		zap.Int("ar_rooms", len(in.AR)),
		zap.Int("voice_rooms", len(in.Voice)),
		zap.Int("photo_rooms", len(in.Photos)),
	)

	groups := e.MatchRooms(in)

	rooms := make([]FusedRoom, 0, len(groups))
	for _, group := range groups {
		if room, ok := e.fuseGroup(group); ok {
			rooms = append(rooms, room)
		}
	}

	building := e.buildSummary(in, rooms)
	meta := &Metadata{
		RunID:              uuid.NewString(),
		SourcesUsed:        sourcesUsed(in),
		TotalRoomsDetected: len(rooms),
		OverallConfidence:  overallConfidence(rooms),
	}

	e.log.Info("fusion complete",
		zap.String("run_id", meta.RunID),
		zap.Int("rooms", len(rooms)),
		zap.Float64("overall_confidence", meta.OverallConfidence),
	)

	return &Result{
		Success:  true,
		Building: building,
		Rooms:    rooms,
		Metadata: meta,
	}, nil
}

// fuseGroup fuses one match group into a single room record. The second
// return is false when the group yields no usable measurements; such
// groups are dropped rather than producing a degenerate room.
func (e *Engine) fuseGroup(group MatchGroup) (FusedRoom, bool) {
	var lengths, widths, heights, weights []float64
	var types []RoomType
	var names []string

	for _, m := range group.Members {
		dims := m.Room.Dimensions
		if dims.LengthMM > 0 {
			height := dims.HeightMM
			if height == 0 {
				height = e.cfg.DefaultCeilingHeightMM
			}
			lengths = append(lengths, dims.LengthMM)
			widths = append(widths, dims.WidthMM)
			heights = append(heights, height)
			weights = append(weights, e.cfg.weightFor(m.Source))
		}
		if m.Room.Type != "" {
			types = append(types, m.Room.Type)
		}
		if m.Room.Name != "" {
			names = append(names, m.Room.Name)
		}
	}

	if len(lengths) == 0 {
		e.log.Info("dropping group with no usable measurements",
			zap.String("anchor_id", group.Anchor().ID),
		)
		return FusedRoom{}, false
	}

	lengths, widths, heights, weights = FilterOutliers(e.cfg.Outlier, lengths, widths, heights, weights)

	fusedLength := WeightedAverage(lengths, weights)
	fusedWidth := WeightedAverage(widths, weights)
	fusedHeight := WeightedAverage(heights, weights)

	roomType := resolveType(types)
	name := resolveName(names, roomType)

	confidence := EstimateConfidence(e.cfg.Confidence, lengths, weights, len(group.Members))

	validation := ValidateDimensions(e.cfg.Validator, e.cfg.Standards,
		units.MMToM(fusedLength), units.MMToM(fusedWidth), units.MMToM(fusedHeight), roomType)

	anchor := group.Anchor()
	anchorID := anchor.ID
	if anchorID == "" {
		anchorID = "room"
	}

	sources := make([]Source, 0, len(group.Members))
	for _, m := range group.Members {
		sources = append(sources, m.Source)
	}

	return FusedRoom{
		ID:   "fused_" + anchorID,
		Name: name,
		Type: roomType,
		Dimensions: FusedDimensions{
			LengthMM: units.Round2(fusedLength),
			WidthMM:  units.Round2(fusedWidth),
			HeightMM: units.Round2(fusedHeight),
			LengthM:  units.Round2(units.MMToM(fusedLength)),
			WidthM:   units.Round2(units.MMToM(fusedWidth)),
			HeightM:  units.Round2(units.MMToM(fusedHeight)),
			AreaSqm:  units.Round2(units.AreaSqmFromMM(fusedLength, fusedWidth)),
		},
		Fusion: FusionInfo{
			SourcesUsed:       sources,
			Confidence:        units.Round2(confidence),
			MeasurementsFused: len(lengths),
			Validation:        validation,
		},
		Doors:   anchor.Doors,
		Windows: anchor.Windows,
	}, true
}

// resolveType picks the room type by majority vote with ties broken by
// first-seen order. The tally iterates a stable first-seen slice rather
// than a map, so equal counts across several types resolve
// deterministically.
func resolveType(types []RoomType) RoomType {
	if len(types) == 0 {
		return RoomUnknown
	}

	counts := make(map[RoomType]int, len(types))
	order := make([]RoomType, 0, len(types))
	for _, t := range types {
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

// resolveName returns the first available display name, falling back to a
// title-cased rendering of the room type.
func resolveName(names []string, roomType RoomType) string {
	if len(names) > 0 {
		return names[0]
	}
	return units.TitleCase(string(roomType))
}

// buildSummary aggregates fused rooms into building-level totals.
func (e *Engine) buildSummary(in *Input, rooms []FusedRoom) *BuildingSummary {
	var totalArea float64
	for _, r := range rooms {
		totalArea += r.Dimensions.AreaSqm
	}

	name := in.BuildingName
	if name == "" {
		name = "My Building"
	}
	floors := in.NumberOfFloors
	if floors == 0 {
		floors = 1
	}

	return &BuildingSummary{
		ID:                uuid.NewString(),
		Name:              name,
		OwnerName:         in.OwnerName,
		TotalFloorAreaSqm: units.Round2(totalArea),
		NumberOfFloors:    floors,
		TotalRooms:        len(rooms),
	}
}

// sourcesUsed lists the sources that supplied at least one candidate room.
func sourcesUsed(in *Input) []Source {
	lists := in.bySource()
	used := make([]Source, 0, len(AnchorPriority))
	for _, s := range AnchorPriority {
		if len(lists[s]) > 0 {
			used = append(used, s)
		}
	}
	return used
}

// overallConfidence is the mean confidence across fused rooms.
func overallConfidence(rooms []FusedRoom) float64 {
	if len(rooms) == 0 {
		return 0
	}
	confidences := make([]float64, len(rooms))
	for i, r := range rooms {
		confidences[i] = r.Fusion.Confidence
	}
	return units.Round2(stat.Mean(confidences, nil))
}
