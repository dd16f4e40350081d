package catalogue

import (
	"github.com/stackforge/stackforge/pkg/stack"
)

// Edge declares the content-delivery distribution fronting the storage
// bucket.
func Edge() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "edge",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "bucket_name", Ref: &stack.Ref{Module: "storage", Output: "bucket_name"}},
		},
		Outputs: []string{"distribution_id", "domain_name"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix := ctx.Inputs["app"], ctx.Inputs["suffix"]

			id := shortID("distribution", app, suffix, ctx.Inputs["bucket_name"])
			return stack.Outputs{
				"distribution_id": "E" + id,
				"domain_name":     id + ".cloudfront.net",
			}, nil
		},
	}
}
