package catalogue

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// Observability declares the log group for the service and, where gated in,
// the alarms watching the service and database. Log retention is a tier
// lookup.
func Observability() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "observability",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "service_id", Ref: &stack.Ref{Module: "compute", Output: "service_id"}},
			{Name: "db_identifier", Ref: &stack.Ref{Module: "database", Output: "identifier"}},
		},
		Outputs: []string{"log_group_name", "log_retention_days"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix := ctx.Inputs["app"], ctx.Inputs["suffix"]
			params := tier.Lookup(ctx.Facts)

			out := stack.Outputs{
				"log_group_name":     "/aws/service/" + resourceName(app, suffix, "service"),
				"log_retention_days": strconv.Itoa(params.LogRetentionDays),
			}

			if tier.Enabled(tier.Alarms, ctx.Facts) {
				out["cpu_alarm_id"] = "alarm-" + shortID("alarm-cpu", app, suffix, ctx.Inputs["service_id"])
				out["db_alarm_id"] = "alarm-" + shortID("alarm-db", app, suffix, ctx.Inputs["db_identifier"])
			} else {
				zap.S().Debugf("alarms disabled for this environment")
			}

			return out, nil
		},
	}
}
