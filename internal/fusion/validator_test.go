package fusion

import (
	"strings"
	"testing"

	"github.com/roomsense-data/roomfusion/internal/standards"
)

func TestValidateDimensions_Valid(t *testing.T) {
	cfg := DefaultConfig()

	got := ValidateDimensions(cfg.Validator, cfg.Standards, 4.0, 3.0, 2.8, RoomMasterBedroom)
	if !got.Passed {
		t.Fatalf("expected pass, got failure: %s", got.Reason)
	}
	if got.Reason != ValidReason {
		t.Errorf("reason = %q, want %q", got.Reason, ValidReason)
	}
}

func TestValidateDimensions_UndersizedBathroom(t *testing.T) {
	cfg := DefaultConfig()

	// 2.0 m² bathroom against the 3.0 m² minimum.
	got := ValidateDimensions(cfg.Validator, cfg.Standards, 2.0, 1.0, 2.5, RoomBathroom)
	if got.Passed {
		t.Fatal("expected failure for undersized bathroom")
	}
	if !strings.Contains(got.Reason, "area 2.0m²") || !strings.Contains(got.Reason, "3.0m²") {
		t.Errorf("reason should cite the area minimum, got %q", got.Reason)
	}
}

func TestValidateDimensions_FirstFailureWins(t *testing.T) {
	cfg := DefaultConfig()

	// Undersized on every axis: the area check runs first and is reported.
	got := ValidateDimensions(cfg.Validator, cfg.Standards, 1.0, 1.0, 1.0, RoomBedroom)
	if got.Passed {
		t.Fatal("expected failure")
	}
	if !strings.Contains(got.Reason, "area") {
		t.Errorf("area check must be reported first, got %q", got.Reason)
	}
}

func TestValidateDimensions_ShorterSideCheck(t *testing.T) {
	cfg := DefaultConfig()

	// Kitchen with enough area (6.0 m²) but a 2.0 m short side against a
	// 2.1 m minimum.
	got := ValidateDimensions(cfg.Validator, cfg.Standards, 3.0, 2.0, 2.8, RoomKitchen)
	if got.Passed {
		t.Fatal("expected failure for short side")
	}
	if !strings.Contains(got.Reason, "dimension below minimum") {
		t.Errorf("reason should cite the dimension minimum, got %q", got.Reason)
	}
}

func TestValidateDimensions_HeightChecks(t *testing.T) {
	cfg := DefaultConfig()

	got := ValidateDimensions(cfg.Validator, cfg.Standards, 4.0, 3.0, 2.2, RoomBedroom)
	if got.Passed || !strings.Contains(got.Reason, "height") {
		t.Errorf("expected minimum-height failure, got passed=%v reason=%q", got.Passed, got.Reason)
	}

	got = ValidateDimensions(cfg.Validator, cfg.Standards, 4.0, 3.0, 6.0, RoomBedroom)
	if got.Passed || !strings.Contains(got.Reason, "unusually high") {
		t.Errorf("expected height ceiling failure, got passed=%v reason=%q", got.Passed, got.Reason)
	}
}

func TestValidateDimensions_AreaCeiling(t *testing.T) {
	cfg := DefaultConfig()

	got := ValidateDimensions(cfg.Validator, cfg.Standards, 30.0, 20.0, 3.0, RoomLivingRoom)
	if got.Passed || !strings.Contains(got.Reason, "unusually large") {
		t.Errorf("expected area ceiling failure, got passed=%v reason=%q", got.Passed, got.Reason)
	}
}

func TestValidateDimensions_UnknownTypeFallback(t *testing.T) {
	cfg := DefaultConfig()

	// Corridors are not in the catalog; the permissive fallback applies.
	got := ValidateDimensions(cfg.Validator, cfg.Standards, 6.0, 1.5, 2.5, RoomCorridor)
	if !got.Passed {
		t.Errorf("corridor within fallback minimums should pass, got %q", got.Reason)
	}

	got = ValidateDimensions(cfg.Validator, cfg.Standards, 1.0, 1.0, 2.5, RoomCorridor)
	if got.Passed {
		t.Error("degenerate corridor should fail the fallback area minimum")
	}
}

func TestValidateDimensions_SubstituteCatalog(t *testing.T) {
	cfg := DefaultConfig()

	// Alternate jurisdiction with a stricter bedroom minimum: the table is
	// data, not logic.
	strict := standards.NewCatalog([]standards.Standard{
		{RoomType: "bedroom", MinAreaSqm: 20.0, MinSideM: 2.4, MinHeightM: 2.75},
	})

	got := ValidateDimensions(cfg.Validator, strict, 4.0, 3.0, 2.8, RoomBedroom)
	if got.Passed {
		t.Error("12 m² bedroom should fail a 20 m² minimum")
	}
}
