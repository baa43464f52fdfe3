// Package standards holds the room-dimension regulatory catalog.
//
// The catalog is static reference data derived from UDA/ICTAD residential
// building guidelines: per room type, the minimum floor area, minimum
// shorter-side length and minimum ceiling height, plus the typical ceiling
// height and finish specifications used by downstream material estimation.
//
// A built-in catalog covers the common residential room types. Deployments
// that maintain their own standards file can load an alternate catalog from
// a SQLite database (see Load), which makes the table substitutable in
// tests and per-jurisdiction without touching validation logic.
package standards

// Standard describes the regulatory minimums for one room type.
type Standard struct {
	RoomType       string  `json:"room_type"`
	MinAreaSqm     float64 `json:"min_area_sqm"`
	MinSideM       float64 `json:"min_length_m"` // Minimum for the shorter of length/width
	MinWidthM      float64 `json:"min_width_m"`
	MinHeightM     float64 `json:"min_height_m"`
	TypicalHeightM float64 `json:"typical_height_m"`
	WallFinish     string  `json:"wall_finish"`
	FloorFinish    string  `json:"floor_finish"`
	CeilingFinish  string  `json:"ceiling_finish"`
}

// Catalog maps room types to their standards and supplies a fallback for
// types it does not know.
type Catalog struct {
	byType   map[string]Standard
	fallback Standard
}

// FallbackStandard is applied to room types absent from the catalog
// (unknown rooms, corridors, storage). The minimums are deliberately
// permissive: they only reject degenerate measurements.
var FallbackStandard = Standard{
	RoomType:   "other",
	MinAreaSqm: 2.0,
	MinSideM:   1.5,
	MinHeightM: 2.4,
}

// defaultStandards is the built-in UDA/ICTAD-derived table.
var defaultStandards = []Standard{
	{RoomType: "master_bedroom", MinAreaSqm: 9.0, MinSideM: 2.7, MinWidthM: 2.7, MinHeightM: 2.75, TypicalHeightM: 3.0, WallFinish: "paint", FloorFinish: "tiles", CeilingFinish: "paint"},
	{RoomType: "bedroom", MinAreaSqm: 7.5, MinSideM: 2.4, MinWidthM: 2.4, MinHeightM: 2.75, TypicalHeightM: 3.0, WallFinish: "paint", FloorFinish: "tiles", CeilingFinish: "paint"},
	{RoomType: "living_room", MinAreaSqm: 12.0, MinSideM: 3.0, MinWidthM: 3.0, MinHeightM: 2.75, TypicalHeightM: 3.3, WallFinish: "paint", FloorFinish: "tiles", CeilingFinish: "paint"},
	{RoomType: "dining_room", MinAreaSqm: 8.0, MinSideM: 2.4, MinWidthM: 2.4, MinHeightM: 2.75, TypicalHeightM: 3.0, WallFinish: "paint", FloorFinish: "tiles", CeilingFinish: "paint"},
	{RoomType: "kitchen", MinAreaSqm: 5.5, MinSideM: 2.1, MinWidthM: 1.8, MinHeightM: 2.75, TypicalHeightM: 3.0, WallFinish: "tiles_partial", FloorFinish: "tiles", CeilingFinish: "paint"},
	{RoomType: "bathroom", MinAreaSqm: 3.0, MinSideM: 1.5, MinWidthM: 1.2, MinHeightM: 2.4, TypicalHeightM: 2.75, WallFinish: "tiles_full", FloorFinish: "tiles", CeilingFinish: "paint"},
	{RoomType: "toilet", MinAreaSqm: 1.5, MinSideM: 1.2, MinWidthM: 0.9, MinHeightM: 2.4, TypicalHeightM: 2.75, WallFinish: "tiles_full", FloorFinish: "tiles", CeilingFinish: "paint"},
	{RoomType: "balcony", MinAreaSqm: 3.0, MinSideM: 1.5, MinWidthM: 1.2, MinHeightM: 2.4, TypicalHeightM: 3.0, WallFinish: "paint", FloorFinish: "tiles", CeilingFinish: "none"},
}

// NewCatalog builds a catalog from an explicit standards list. Later
// entries for the same room type overwrite earlier ones.
func NewCatalog(stds []Standard) Catalog {
	byType := make(map[string]Standard, len(stds))
	for _, s := range stds {
		byType[s.RoomType] = s
	}
	return Catalog{byType: byType, fallback: FallbackStandard}
}

// DefaultCatalog returns the built-in standards table.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultStandards)
}

// Lookup returns the standard for a room type, or the fallback standard
// when the type is not in the catalog. The second return reports whether
// the type was found.
func (c Catalog) Lookup(roomType string) (Standard, bool) {
	if s, ok := c.byType[roomType]; ok {
		return s, true
	}
	return c.fallback, false
}

// Len returns the number of room types in the catalog, excluding the
// fallback.
func (c Catalog) Len() int {
	return len(c.byType)
}
