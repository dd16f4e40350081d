// Package tier centralizes every environment-dependent inclusion decision and
// parameter table. Gates are independent pure predicates of the environment
// facts; no gate consults another gate, so their evaluation order never
// matters. Modules ask this package instead of re-deriving tier behavior
// inline.
package tier

import (
	"github.com/stackforge/stackforge/pkg/environment"
)

// Feature enumerates the optional sub-resources whose creation is gated on
// the environment facts.
type Feature int

const (
	Alarms Feature = iota
	AccessKeys
	DetailedMonitoring
	MultiZone
	ExtendedRetention
	AccessLogging
)

func (f Feature) String() string {
	switch f {
	case Alarms:
		return "alarms"
	case AccessKeys:
		return "access-keys"
	case DetailedMonitoring:
		return "detailed-monitoring"
	case MultiZone:
		return "multi-zone"
	case ExtendedRetention:
		return "extended-retention"
	case AccessLogging:
		return "access-logging"
	default:
		return "unknown"
	}
}

// Enabled decides whether an optional sub-resource is created at all.
// Non-production deployments minimize cost and omit the defensive and
// observability extras; production deployments enable them.
func Enabled(f Feature, facts environment.Facts) bool {
	mustClassified(facts)
	switch f {
	case Alarms, AccessKeys, DetailedMonitoring, MultiZone, ExtendedRetention, AccessLogging:
		return facts.ProductionGrade
	default:
		return false
	}
}

// DeletionProtection is kept separate from the production-grade gate: an
// ephemeral deployment must stay deletable by automated tooling even when it
// is otherwise configured production-grade.
func DeletionProtection(facts environment.Facts) bool {
	mustClassified(facts)
	return facts.ProductionGrade && !facts.Ephemeral
}

// Parameters are the numeric and sizing knobs that differ by tier. They are
// selected by lookup from one table, never recomputed ad hoc per module.
type Parameters struct {
	DatabaseInstanceClass     string
	BackupRetentionDays       int
	LogRetentionDays          int
	MessageRetentionSeconds   int
	ThroughputCeiling         int
	MonitoringIntervalSeconds int
	ComputeMemoryMB           int
}

var parametersByTier = map[bool]Parameters{
	true: {
		DatabaseInstanceClass:     "db.r6g.large",
		BackupRetentionDays:       30,
		LogRetentionDays:          365,
		MessageRetentionSeconds:   1209600, // 14 days
		ThroughputCeiling:         1000,
		MonitoringIntervalSeconds: 30,
		ComputeMemoryMB:           1024,
	},
	false: {
		DatabaseInstanceClass:     "db.t3.micro",
		BackupRetentionDays:       1,
		LogRetentionDays:          7,
		MessageRetentionSeconds:   345600, // 4 days
		ThroughputCeiling:         100,
		MonitoringIntervalSeconds: 60,
		ComputeMemoryMB:           256,
	},
}

// Lookup returns the parameter set for the deployment tier.
func Lookup(facts environment.Facts) Parameters {
	mustClassified(facts)
	return parametersByTier[facts.ProductionGrade]
}

// SubnetCount is how many zones the network spreads across; it follows the
// multi-zone gate.
func SubnetCount(facts environment.Facts) int {
	if Enabled(MultiZone, facts) {
		return 3
	}
	return 1
}

func mustClassified(facts environment.Facts) {
	if !facts.Valid() {
		panic("tier: gate consulted before environment classification ran")
	}
}
