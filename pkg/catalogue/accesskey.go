package catalogue

import (
	"strings"

	"github.com/stackforge/stackforge/pkg/config"
	"github.com/stackforge/stackforge/pkg/environment"
	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// AccessKey issues the automation access key for the service role. The whole
// module is gated: non-production stacks never create it, and its exports are
// simply absent from the output map.
func AccessKey() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "accesskey",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "role_arn", Ref: &stack.Ref{Module: "identity", Output: "role_arn"}},
		},
		Outputs: []string{"access_key_id", "secret_parameter"},
		Include: func(facts environment.Facts, _ config.Resolved) bool {
			return tier.Enabled(tier.AccessKeys, facts)
		},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix := ctx.Inputs["app"], ctx.Inputs["suffix"]

			return stack.Outputs{
				"access_key_id":    "AKIA" + strings.ToUpper(shortID("access-key", app, suffix)),
				"secret_parameter": "/" + resourceName(app, suffix, "automation-secret"),
			}, nil
		},
	}
}
