package scoring

import "fmt"

// effortScore rewards quick wins: higher score for lower estimated hours.
// Missing or zero estimates are neutral, neither penalized nor favored.
func effortScore(hours *float64) (float64, string) {
	if hours == nil || *hours <= 0 {
		return NeutralEffort, "unknown effort (assumed medium)"
	}

	h := *hours
	switch {
	case h <= 1:
		return 10.0, fmt.Sprintf("very low effort (~%gh)", h)
	case h <= 3:
		return 8.0, fmt.Sprintf("low effort (~%gh)", h)
	case h <= 6:
		return 6.0, fmt.Sprintf("medium effort (~%gh)", h)
	case h <= 10:
		return 4.0, fmt.Sprintf("high effort (~%gh)", h)
	default:
		return 2.0, fmt.Sprintf("very high effort (~%gh)", h)
	}
}
