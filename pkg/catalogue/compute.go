package catalogue

import (
	"fmt"
	"strconv"

	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// Compute declares the application service, placed in the stack network and
// running as the service role. Memory sizing and the monitoring interval are
// tier lookups; detailed monitoring itself is a gated extra.
func Compute() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "compute",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "region", FromConfig: "region"},
			{Name: "subnet_ids", Ref: &stack.Ref{Module: "network", Output: "subnet_ids"}},
			{Name: "security_group_id", Ref: &stack.Ref{Module: "network", Output: "security_group_id"}},
			{Name: "role_arn", Ref: &stack.Ref{Module: "identity", Output: "role_arn"}},
		},
		Outputs: []string{"service_name", "service_id", "service_url"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix, region := ctx.Inputs["app"], ctx.Inputs["suffix"], ctx.Inputs["region"]
			params := tier.Lookup(ctx.Facts)

			name := resourceName(app, suffix, "service")
			out := stack.Outputs{
				"service_name": name,
				"service_id":   "svc-" + shortID("service", app, suffix),
				"service_url":  fmt.Sprintf("https://%s.%s.elb.amazonaws.com", name, region),
				"memory_mb":    strconv.Itoa(params.ComputeMemoryMB),
			}
			if tier.Enabled(tier.DetailedMonitoring, ctx.Facts) {
				out["monitoring_interval_seconds"] = strconv.Itoa(params.MonitoringIntervalSeconds)
			}
			return out, nil
		},
	}
}
