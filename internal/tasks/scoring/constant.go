package scoring

// Smart balance weights.
const (
	SmartWeightImportance   = 0.4
	SmartWeightUrgency      = 0.3
	SmartWeightEffort       = 0.2
	SmartWeightDependencies = 0.1
)

// Fastest wins weights.
const (
	FastestWinsWeightEffort     = 0.7
	FastestWinsWeightUrgency    = 0.2
	FastestWinsWeightImportance = 0.1
)

// Deadline driven weights.
const (
	DeadlineDrivenWeightUrgency    = 0.7
	DeadlineDrivenWeightImportance = 0.3
)

// High impact weight.
const (
	HighImpactWeightImportance = 1.0
)

// Urgency mapping bounds.
const (
	NeutralUrgency = 5.0 // no due date
	OverdueCapDays = 7   // overdue beyond a week scores the same
	OverdueFloor   = 7.0
	UrgencyMax     = 10.0
	DueSoonDays    = 3
	NeutralEffort  = 6.0 // missing or zero estimate
)

// MissingDependencyPenalty is subtracted per dependency id absent from the
// batch. The result is floored at zero, so a blocked task never outranks
// its unblocked twin.
const MissingDependencyPenalty = 2.0
