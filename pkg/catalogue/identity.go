package catalogue

import (
	"fmt"

	"github.com/stackforge/stackforge/pkg/stack"
)

// Identity declares the service role and its access policy. The policy is
// scoped to the concrete resource identifiers produced upstream, which is why
// identity must construct after storage, database, and messaging — referring
// to those resources by ad hoc name lookup instead of declared edges is what
// produces circular wiring in the wild.
func Identity() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "identity",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "bucket_arn", Ref: &stack.Ref{Module: "storage", Output: "bucket_arn"}},
			{Name: "db_identifier", Ref: &stack.Ref{Module: "database", Output: "identifier"}},
			{Name: "queue_arn", Ref: &stack.Ref{Module: "messaging", Output: "queue_arn"}},
		},
		Outputs: []string{"role_name", "role_arn", "policy_arn"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix := ctx.Inputs["app"], ctx.Inputs["suffix"]

			roleName := resourceName(app, suffix, "service-role")
			policyName := resourceName(app, suffix, "service-policy")
			return stack.Outputs{
				"role_name":  roleName,
				"role_arn":   fmt.Sprintf("arn:aws:iam::000000000000:role/%s", roleName),
				"policy_arn": fmt.Sprintf("arn:aws:iam::000000000000:policy/%s", policyName),
			}, nil
		},
	}
}
