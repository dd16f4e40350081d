package catalogue

import (
	"fmt"
	"strconv"

	"github.com/stackforge/stackforge/pkg/stack"
	"github.com/stackforge/stackforge/pkg/tier"
)

// Database declares the relational database inside the stack network,
// encrypted with the stack key. Sizing, backup retention, and zone spread are
// tier lookups, never computed here.
func Database() *stack.Descriptor {
	return &stack.Descriptor{
		Name: "database",
		Inputs: []stack.InputSpec{
			{Name: "app", FromConfig: "app"},
			{Name: "suffix", FromConfig: "suffix"},
			{Name: "region", FromConfig: "region"},
			{Name: "subnet_ids", Ref: &stack.Ref{Module: "network", Output: "subnet_ids"}},
			{Name: "security_group_id", Ref: &stack.Ref{Module: "network", Output: "security_group_id"}},
			{Name: "key_arn", Ref: &stack.Ref{Module: "encryption", Output: "key_arn"}},
		},
		Outputs: []string{"identifier", "endpoint", "port"},
		Build: func(ctx stack.BuildContext) (stack.Outputs, error) {
			app, suffix, region := ctx.Inputs["app"], ctx.Inputs["suffix"], ctx.Inputs["region"]
			params := tier.Lookup(ctx.Facts)

			identifier := resourceName(app, suffix, "db")
			return stack.Outputs{
				"identifier":            identifier,
				"endpoint":              fmt.Sprintf("%s.%s.%s.rds.amazonaws.com", identifier, shortID("db", app, suffix), region),
				"port":                  "5432",
				"instance_class":        params.DatabaseInstanceClass,
				"backup_retention_days": strconv.Itoa(params.BackupRetentionDays),
				"multi_az":              strconv.FormatBool(tier.Enabled(tier.MultiZone, ctx.Facts)),
				"deletion_protection":   strconv.FormatBool(tier.DeletionProtection(ctx.Facts)),
			}, nil
		},
	}
}
