package catalogue

import (
	"fmt"

	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// Encryption is the customer-managed key every data-bearing module encrypts
// with. It sits at the root of the dependency graph.
func Encryption() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "encryption",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "region", FromConfig: "region"},
		},
		Outputs: []string{"key_id", "key_alias", "key_arn"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix, region := ctx.Inputs["app"], ctx.Inputs["suffix"], ctx.Inputs["region"]

			keyID := resourceID("kms", app, suffix)
			out := stack.Outputs{
				"key_id":    keyID,
				"key_alias": "alias/" + resourceName(app, suffix, "key"),
				"key_arn":   fmt.Sprintf("arn:aws:kms:%s:000000000000:key/%s", region, keyID),
			}
			// Extended retention doubles as the key-deletion window policy:
			// production keys keep the long pending-deletion window.
			if tier.Enabled(tier.ExtendedRetention, ctx.Facts) {
				out["deletion_window_days"] = "30"
			}
			return out, nil
		},
	}
}
