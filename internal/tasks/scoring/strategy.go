package scoring

// Strategy selects which heuristic weighting the engine applies.
type Strategy string

const (
	StrategySmartBalance   Strategy = "smart_balance"
	StrategyFastestWins    Strategy = "fastest_wins"
	StrategyDeadlineDriven Strategy = "deadline_driven"
	StrategyHighImpact     Strategy = "high_impact"
)

// ParseStrategy resolves a strategy name. "default" and "" resolve to
// smart_balance; anything else unknown reports false — callers must treat
// that as an error rather than silently defaulting.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "", "default", string(StrategySmartBalance):
		return StrategySmartBalance, true
	case string(StrategyFastestWins):
		return StrategyFastestWins, true
	case string(StrategyDeadlineDriven):
		return StrategyDeadlineDriven, true
	case string(StrategyHighImpact):
		return StrategyHighImpact, true
	default:
		return "", false
	}
}

// Strategies lists the canonical strategy names.
func Strategies() []Strategy {
	return []Strategy{
		StrategySmartBalance,
		StrategyFastestWins,
		StrategyDeadlineDriven,
		StrategyHighImpact,
	}
}

func scoreSmartBalance(importance, urgency, effort float64, unblocks int) float64 {
	return SmartWeightImportance*importance +
		SmartWeightUrgency*urgency +
		SmartWeightEffort*effort +
		SmartWeightDependencies*float64(unblocks)
}

func scoreFastestWins(importance, urgency, effort float64) float64 {
	// Effort already scores higher for lower hours
	return FastestWinsWeightEffort*effort +
		FastestWinsWeightUrgency*urgency +
		FastestWinsWeightImportance*importance
}

func scoreDeadlineDriven(importance, urgency float64) float64 {
	return DeadlineDrivenWeightUrgency*urgency +
		DeadlineDrivenWeightImportance*importance
}

func scoreHighImpact(importance float64) float64 {
	return HighImpactWeightImportance * importance
}
