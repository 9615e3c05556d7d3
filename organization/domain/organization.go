package domain

import "time"

// Usage tracks the execution counters of an organization within the current
// billing cycle. Counters only grow within a cycle; the scheduler resets them
// lazily once the cycle start is more than one month old.
type Usage struct {
	ExecutionsThisMonth int64            `firestore:"executionsThisMonth" json:"executionsThisMonth"`
	BillingCycleStart   time.Time        `firestore:"billingCycleStart" json:"billingCycleStart"`
	DailyExecutions     map[string]int64 `firestore:"dailyExecutions" json:"dailyExecutions"`
}

// Organization is the billing and quota boundary. It owns triggers and usage
// counters.
type Organization struct {
	ID       string `firestore:"-" json:"id"`
	Name     string `firestore:"name" json:"name"`
	PlanID   string `firestore:"planId" json:"planId"`
	Timezone string `firestore:"timezone" json:"timezone"`
	Usage    Usage  `firestore:"usage" json:"usage"`
}

// Location resolves the organization's IANA timezone, falling back to UTC
// when it is missing or invalid.
func (o *Organization) Location() *time.Location {
	if o.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
