package domain

import (
	"strings"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// EmergencyCategory enumerates the evacuation triggers.
type EmergencyCategory string

const (
	CategoryEpidemic EmergencyCategory = "epidemic"
	CategoryFire     EmergencyCategory = "fire"
	CategoryFlood    EmergencyCategory = "flood"
	CategorySecurity EmergencyCategory = "security"
)

// EvacuationPriority is the default severity for evacuation broadcasts.
// Emergencies bias high, unlike the account-level default.
const EvacuationPriority = PriorityHigh

// AnnouncementPriority is the default severity for administrator
// free-text broadcasts.
const AnnouncementPriority = PriorityMedium

// categoryMessages is the static category-to-instruction lookup,
// constructed at startup instead of a mutable registry.
var categoryMessages = map[EmergencyCategory]string{
	CategoryEpidemic: "Wear a mask",
	CategoryFire:     "Evacuate immediately",
	CategoryFlood:    "Move to the upper floors",
	CategorySecurity: "Follow the security instructions",
}

// Categories returns the known categories in a stable order.
func Categories() []EmergencyCategory {
	return []EmergencyCategory{CategoryEpidemic, CategoryFire, CategoryFlood, CategorySecurity}
}

// ParseCategory resolves raw input to a known category.
func ParseCategory(raw string) (EmergencyCategory, error) {
	category := EmergencyCategory(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := categoryMessages[category]; !ok {
		return "", apperrors.NewUnknownCategory(raw)
	}
	return category, nil
}

// Message returns the fixed human-readable instruction for a category.
func (c EmergencyCategory) Message() string {
	return categoryMessages[c]
}

func (c EmergencyCategory) String() string {
	return string(c)
}
