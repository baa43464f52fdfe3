package fusion

import "github.com/roomsense-data/roomfusion/internal/units"

// Source identifies which sensing pipeline produced a measurement.
type Source string

const (
	SourceFloorPlan Source = "floor_plan"     // 2D floor-plan image analysis
	SourceAR        Source = "ar_measurement" // AR/depth-sensor capture (LiDAR)
	SourceVoice     Source = "voice_input"    // Transcribed-speech parsing
	SourcePhotos    Source = "photos"         // Photo-based depth estimation
	SourceManual    Source = "manual"         // Operator-entered measurement
)

// AnchorPriority is the fixed order in which sources are considered as the
// matching anchor. The first source with at least one candidate room wins.
var AnchorPriority = []Source{SourceFloorPlan, SourceAR, SourceVoice, SourcePhotos}

// RoomType classifies a room for matching and standards lookup.
type RoomType string

const (
	RoomMasterBedroom RoomType = "master_bedroom"
	RoomBedroom       RoomType = "bedroom"
	RoomLivingRoom    RoomType = "living_room"
	RoomDiningRoom    RoomType = "dining_room"
	RoomKitchen       RoomType = "kitchen"
	RoomBathroom      RoomType = "bathroom"
	RoomToilet        RoomType = "toilet"
	RoomBalcony       RoomType = "balcony"
	RoomCorridor      RoomType = "corridor"
	RoomStorage       RoomType = "storage"
	RoomUnknown       RoomType = "unknown"
)

// OpeningType classifies a wall opening.
type OpeningType string

const (
	OpeningDoor       OpeningType = "door"
	OpeningWindow     OpeningType = "window"
	OpeningSliding    OpeningType = "sliding_door"
	OpeningFrenchDoor OpeningType = "french_door"
)

// Opening is a door or window in a room. Openings are passed through from
// the anchor candidate untouched; the engine never fuses opening geometry.
type Opening struct {
	Type      OpeningType `json:"type"`
	X         float64     `json:"x"` // Position along the wall, millimetres
	Y         float64     `json:"y"`
	WidthMM   float64     `json:"width_mm"`
	HeightMM  float64     `json:"height_mm"`
	WallIndex *int        `json:"wall_index,omitempty"`
}

// Dimensions is a room dimension triple in millimetres with the derived
// floor area. A zero length marks the dimensions as unusable for fusion.
type Dimensions struct {
	LengthMM float64 `json:"length_mm"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	AreaSqm  float64 `json:"area_sqm"`
}

// Area returns the recorded area if set, otherwise derives it from length
// and width.
func (d Dimensions) Area() float64 {
	if d.AreaSqm > 0 {
		return d.AreaSqm
	}
	return units.AreaSqmFromMM(d.LengthMM, d.WidthMM)
}

// CandidateRoom is one source's estimate of a room. Candidate rooms are
// produced by the upstream capture pipelines and are never mutated by the
// engine.
type CandidateRoom struct {
	Source     Source     `json:"source,omitempty"`
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Type       RoomType   `json:"type"`
	Dimensions Dimensions `json:"dimensions"`
	Doors      []Opening  `json:"doors,omitempty"`
	Windows    []Opening  `json:"windows,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
}

// Member is one source's contribution to a match group.
type Member struct {
	Source Source
	Room   CandidateRoom
}

// MatchGroup is the ordered set of candidate rooms believed to denote one
// physical room. The anchor candidate is always Members[0]. A group holds
// at most one member per source: a source cannot contribute two
// measurements of the same room in one fusion pass.
type MatchGroup struct {
	Members []Member
}

// Anchor returns the group's anchor candidate.
func (g MatchGroup) Anchor() CandidateRoom {
	return g.Members[0].Room
}

// ValidationResult reports the standards check for a fused room.
type ValidationResult struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// FusedDimensions carries the fused triple in both millimetres and metres,
// all rounded to two decimals.
type FusedDimensions struct {
	LengthMM float64 `json:"length_mm"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	LengthM  float64 `json:"length_m"`
	WidthM   float64 `json:"width_m"`
	HeightM  float64 `json:"height_m"`
	AreaSqm  float64 `json:"area_sqm"`
}

// FusionInfo is the per-room fusion metadata.
type FusionInfo struct {
	SourcesUsed       []Source         `json:"sources_used"`
	Confidence        float64          `json:"confidence"`
	MeasurementsFused int              `json:"measurements_fused"`
	Validation        ValidationResult `json:"validation"`
}

// FusedRoom is the single authoritative room record after fusion.
type FusedRoom struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       RoomType        `json:"type"`
	Dimensions FusedDimensions `json:"dimensions"`
	Fusion     FusionInfo      `json:"fusion_metadata"`
	Doors      []Opening       `json:"doors"`
	Windows    []Opening       `json:"windows"`
}

// BuildingSummary aggregates the fused rooms into building-level totals.
type BuildingSummary struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	OwnerName         string  `json:"owner_name,omitempty"`
	TotalFloorAreaSqm float64 `json:"total_floor_area_sqm"`
	NumberOfFloors    int     `json:"number_of_floors"`
	TotalRooms        int     `json:"total_rooms"`
}

// Input is one fusion request: up to four candidate lists, one per source,
// plus declared building metadata. Missing sources are simply absent.
type Input struct {
	FloorPlan []CandidateRoom `json:"floor_plan,omitempty"`
	AR        []CandidateRoom `json:"ar_measurement,omitempty"`
	Voice     []CandidateRoom `json:"voice_input,omitempty"`
	Photos    []CandidateRoom `json:"photos,omitempty"`

	BuildingName   string `json:"building_name,omitempty"`
	OwnerName      string `json:"owner_name,omitempty"`
	NumberOfFloors int    `json:"number_of_floors,omitempty"`
}

// bySource returns the candidate lists keyed by source tag, in anchor
// priority order.
func (in *Input) bySource() map[Source][]CandidateRoom {
	return map[Source][]CandidateRoom{
		SourceFloorPlan: in.FloorPlan,
		SourceAR:        in.AR,
		SourceVoice:     in.Voice,
		SourcePhotos:    in.Photos,
	}
}

// Metadata describes an entire fusion run.
type Metadata struct {
	RunID              string   `json:"run_id"`
	SourcesUsed        []Source `json:"sources_used"`
	TotalRoomsDetected int      `json:"total_rooms_detected"`
	OverallConfidence  float64  `json:"overall_confidence"`
}

// Result is the output of one fusion run. On catastrophic failure Success
// is false, Error holds the message and no partial building data is
// populated.
type Result struct {
	Success  bool             `json:"success"`
	Error    string           `json:"error,omitempty"`
	Building *BuildingSummary `json:"building,omitempty"`
	Rooms    []FusedRoom      `json:"rooms,omitempty"`
	Metadata *Metadata        `json:"fusion_metadata,omitempty"`
}
