package catalogue

import (
	"fmt"
	"strings"

	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// Network declares the VPC, its subnets, and the shared security group.
// Subnet spread follows the multi-zone gate: one zone for cost-minimized
// deployments, three for production-grade ones.
func Network() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "network",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "region", FromConfig: "region"},
		},
		Outputs: []string{"vpc_id", "subnet_ids", "security_group_id"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix, region := ctx.Inputs["app"], ctx.Inputs["suffix"], ctx.Inputs["region"]

			zones := tier.SubnetCount(ctx.Facts)
			subnetIDs := make([]string, 0, zones)
			for i := 0; i < zones; i++ {
				zone := fmt.Sprintf("%s%c", region, 'a'+i)
				subnetIDs = append(subnetIDs, "subnet-"+shortID("subnet", app, suffix, zone))
			}

			return stack.Outputs{
				"vpc_id":            "vpc-" + shortID("vpc", app, suffix),
				"subnet_ids":        strings.Join(subnetIDs, ","),
				"security_group_id": "sg-" + shortID("sg", app, suffix),
			}, nil
		},
	}
}
