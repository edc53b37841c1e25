package schedule

import "github.com/ovenside/storefront/internal/domain/model"

// Report is the outcome of a publish-eligibility check. Missing lists every
// unmet precondition so callers can render a complete checklist.
type Report struct {
	Ready   bool
	Missing []model.ReadinessReason
}

// Readiness evaluates whether an event may move from draft to published:
// non-empty description, at least one pickup window and at least one menu
// item. Title and pre-order open time are mandatory before any save
// succeeds, so they are not re-checked here.
func Readiness(event model.Event, windowCount, menuItemCount int) Report {
	var missing []model.ReadinessReason
	if event.Description == "" {
		missing = append(missing, model.ReasonMissingDescription)
	}
	if menuItemCount == 0 {
		missing = append(missing, model.ReasonNoMenuItems)
	}
	if windowCount == 0 {
		missing = append(missing, model.ReasonNoPickupWindows)
	}
	return Report{Ready: len(missing) == 0, Missing: missing}
}
