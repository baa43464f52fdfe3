package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roomsense-data/roomfusion/internal/fusion"
)

func testResult(t *testing.T) *fusion.Result {
	t.Helper()

	engine := fusion.NewEngine(fusion.DefaultConfig(), nil)
	result, err := engine.Fuse(&fusion.Input{
		BuildingName: "Test House",
		FloorPlan: []fusion.CandidateRoom{
			{ID: "fp_1", Type: fusion.RoomBedroom, Dimensions: fusion.Dimensions{LengthMM: 4000, WidthMM: 3000}},
			{ID: "fp_2", Type: fusion.RoomToilet, Dimensions: fusion.Dimensions{LengthMM: 1000, WidthMM: 900}},
		},
	})
	if err != nil {
		t.Fatalf("build test result: %v", err)
	}
	return result
}

func TestWriteChart(t *testing.T) {
	result := testResult(t)

	var buf bytes.Buffer
	if err := WriteChart(&buf, result); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Test House") {
		t.Error("chart should carry the building name")
	}
	if !strings.Contains(html, "Bedroom") {
		t.Error("chart should carry room names")
	}
	// The undersized toilet failed validation and is flagged in its label.
	if !strings.Contains(html, "⚠") {
		t.Error("failed-validation rooms should be flagged")
	}
}

func TestWriteChart_RejectsFailedResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChart(&buf, &fusion.Result{Success: false}); err == nil {
		t.Error("expected error for unsuccessful result")
	}
	if err := WriteChart(&buf, nil); err == nil {
		t.Error("expected error for nil result")
	}
}
