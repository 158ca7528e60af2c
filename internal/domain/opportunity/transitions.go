package opportunity

import "time"

// ComputeTransition is the pure scheduling rule the sweep applies: open/full
// opportunities whose window has begun move to in_progress, in-progress ones
// whose window has elapsed move to completed. The second value is false when
// nothing is due, so a sweep re-run observes no work.
func ComputeTransition(status Status, startDate, endDate time.Time, now time.Time) (Status, bool) {
	switch status {
	case StatusOpen, StatusFull:
		if !now.Before(startDate) {
			return StatusInProgress, true
		}
	case StatusInProgress:
		if !now.Before(endDate) {
			return StatusCompleted, true
		}
	}
	return status, false
}
