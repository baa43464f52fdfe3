package fusion

import (
	"fmt"
	"math"

	"github.com/roomsense-data/roomfusion/internal/standards"
)

// ValidReason is the reason string reported when every check passes.
const ValidReason = "valid"

// ValidateDimensions checks fused dimensions (in metres) against the
// regulatory standard for the room type. Checks run in a fixed order and
// the first failure wins:
//
//  1. floor area at or above the type minimum
//  2. shorter side at or above the type minimum
//  3. ceiling height at or above the type minimum
//  4. floor area below the sanity ceiling
//  5. ceiling height below the sanity ceiling
//
// Room types absent from the catalog are held to the permissive fallback
// standard. A failed validation is a finding, not an error: the fused room
// is still returned with the result attached.
func ValidateDimensions(cfg ValidatorConfig, catalog standards.Catalog, lengthM, widthM, heightM float64, roomType RoomType) ValidationResult {
	std, _ := catalog.Lookup(string(roomType))
	area := lengthM * widthM

	if area < std.MinAreaSqm {
		return ValidationResult{
			Reason: fmt.Sprintf("area %.1fm² below minimum %.1fm² for %s", area, std.MinAreaSqm, roomType),
		}
	}
	if math.Min(lengthM, widthM) < std.MinSideM {
		return ValidationResult{
			Reason: fmt.Sprintf("dimension below minimum %.1fm for %s", std.MinSideM, roomType),
		}
	}
	if heightM < std.MinHeightM {
		return ValidationResult{
			Reason: fmt.Sprintf("height %.1fm below minimum %.1fm", heightM, std.MinHeightM),
		}
	}
	if area > cfg.MaxAreaSqm {
		return ValidationResult{
			Reason: fmt.Sprintf("area %.1fm² unusually large", area),
		}
	}
	if heightM > cfg.MaxHeightM {
		return ValidationResult{
			Reason: fmt.Sprintf("height %.1fm unusually high", heightM),
		}
	}

	return ValidationResult{Passed: true, Reason: ValidReason}
}
