package catalogue

import (
	"fmt"
	"strconv"

	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// Messaging declares the work queue, encrypted with the stack key. The
// message retention window and the delivery throughput ceiling are tier
// lookups.
func Messaging() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "messaging",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "region", FromConfig: "region"},
			{Name: "key_arn", Ref: &stack.Ref{Module: "encryption", Output: "key_arn"}},
		},
		Outputs: []string{"queue_name", "queue_url", "queue_arn"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix, region := ctx.Inputs["app"], ctx.Inputs["suffix"], ctx.Inputs["region"]
			params := tier.Lookup(ctx.Facts)

			name := resourceName(app, suffix, "work-queue")
			return stack.Outputs{
				"queue_name":         name,
				"queue_url":          fmt.Sprintf("https://sqs.%s.amazonaws.com/000000000000/%s", region, name),
				"queue_arn":          fmt.Sprintf("arn:aws:sqs:%s:000000000000:%s", region, name),
				"retention_seconds":  strconv.Itoa(params.MessageRetentionSeconds),
				"throughput_ceiling": strconv.Itoa(params.ThroughputCeiling),
			}, nil
		},
	}
}
