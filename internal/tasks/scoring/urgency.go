package scoring

import (
	"fmt"
	"time"
)

// daysUntilDue returns whole days between now and the due date, comparing
// at date precision so "due today" is 0 regardless of the time of day.
func daysUntilDue(due, now time.Time) int {
	d := date(due)
	n := date(now)
	return int(d.Sub(n).Hours() / 24)
}

func date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// urgencyScore maps days until due into 0–10 urgency with a reason.
// Overdue tasks are capped so a month-late task doesn't run away.
func urgencyScore(due *time.Time, now time.Time) (float64, string) {
	if due == nil {
		return NeutralUrgency, "neutral urgency (no due date)"
	}

	days := daysUntilDue(*due, now)

	// Past due: more urgent than due very soon
	if days < 0 {
		capped := days
		if capped < -OverdueCapDays {
			capped = -OverdueCapDays
		}
		urgency := clamp(UrgencyMax+float64(capped), OverdueFloor, UrgencyMax)
		return urgency, fmt.Sprintf("overdue by %d days", -days)
	}

	// 0 days → 10, 10+ days → 0
	urgency := clamp(UrgencyMax-float64(days), 0, UrgencyMax)
	switch {
	case days == 0:
		return urgency, "due today"
	case days <= DueSoonDays:
		return urgency, fmt.Sprintf("due soon (in %d days)", days)
	default:
		return urgency, fmt.Sprintf("due in %d days", days)
	}
}
