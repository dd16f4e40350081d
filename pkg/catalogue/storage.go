package catalogue

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// Storage declares the primary object bucket, encrypted with the stack key.
// Access logging and versioning are production extras; deletion protection
// additionally honors the ephemeral flag so test stacks stay deletable.
func Storage() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "storage",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "key_arn", Ref: &stack.Ref{Module: "encryption", Output: "key_arn"}},
		},
		Outputs: []string{"bucket_name", "bucket_arn", "versioning"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix := ctx.Inputs["app"], ctx.Inputs["suffix"]

			bucket := resourceName(app, suffix, "data")
			out := stack.Outputs{
				"bucket_name":         bucket,
				"bucket_arn":          "arn:aws:s3:::" + bucket,
				"versioning":          strconv.FormatBool(tier.Enabled(tier.ExtendedRetention, ctx.Facts)),
				"deletion_protection": strconv.FormatBool(tier.DeletionProtection(ctx.Facts)),
			}

			if tier.Enabled(tier.AccessLogging, ctx.Facts) {
				out["access_logs_bucket"] = resourceName(app, suffix, "access-logs")
			} else {
				zap.S().Debugf("bucket %s: access logging disabled for this environment", bucket)
			}

			return out, nil
		},
	}
}
