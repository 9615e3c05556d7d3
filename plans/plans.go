package plans

// Limits defines the quota boundaries of a billing plan.
type Limits struct {
	MaxTriggers           int
	MaxExecutionsPerMonth int64
	MinIntervalMinutes    int64
}

const (
	PlanFree     = "free"
	PlanStarter  = "starter"
	PlanBusiness = "business"
)

var planLimits = map[string]Limits{
	PlanFree: {
		MaxTriggers:           5,
		MaxExecutionsPerMonth: 100,
		MinIntervalMinutes:    60,
	},
	PlanStarter: {
		MaxTriggers:           20,
		MaxExecutionsPerMonth: 1000,
		MinIntervalMinutes:    15,
	},
	PlanBusiness: {
		MaxTriggers:           100,
		MaxExecutionsPerMonth: 10000,
		MinIntervalMinutes:    1,
	},
}

// LimitsFor returns the limits of the given plan id. Unknown or empty plan
// ids fall back to the free plan.
func LimitsFor(planID string) Limits {
	if limits, ok := planLimits[planID]; ok {
		return limits
	}

	return planLimits[PlanFree]
}
