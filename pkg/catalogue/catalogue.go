// Package catalogue holds the canonical module catalogue: the fixed set of
// infrastructure module descriptors a stack is composed from, and the curated
// export list exposed at the stack boundary.
//
// The construction sequence that falls out of the declared edges is:
// encryption, network, then storage/database/messaging (consuming network
// outputs and the encryption key), identity (consuming the storage, database,
// and messaging identifiers), compute (consuming network and identity),
// observability (consuming compute and database), and edge (consuming
// storage). That order is a consequence of the edges, not a convention; any
// valid topological order would be equally correct.
package catalogue

import (
	"github.com/stackforge/stackforge/pkg/stack"
)

// Register adds the canonical catalogue to r.
func Register(r *stack.Registry) error {
	descriptors := []*stack.Descriptor{
		Encryption(),
		Network(),
		Storage(),
		Database(),
		Messaging(),
		Identity(),
		AccessKey(),
		Compute(),
		Observability(),
		Edge(),
	}
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry pre-populated with the canonical catalogue.
func NewRegistry() (*stack.Registry, error) {
	r := stack.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Exports is the curated export list for the canonical catalogue. The
// access-key and access-log entries are deliberately not Required: their
// source modules and outputs are gated by environment and the aggregator
// skips them when absent.
func Exports() []stack.ExportSpec {
	return []stack.ExportSpec{
		{Name: "region", Description: "Deployment region", Scalar: "region", Required: true},
		{Name: "environment", Description: "Environment indicator", Scalar: "environment", Required: true},
		{Name: "vpc_id", Description: "VPC identifier", Module: "network", Output: "vpc_id", Required: true},
		{Name: "bucket_name", Description: "Primary storage bucket", Module: "storage", Output: "bucket_name", Required: true},
		{Name: "database_endpoint", Description: "Database connection endpoint", Module: "database", Output: "endpoint", Sensitive: true, Required: true},
		{Name: "queue_url", Description: "Message queue URL", Module: "messaging", Output: "queue_url", Required: true},
		{Name: "service_url", Description: "Compute service URL", Module: "compute", Output: "service_url", Required: true},
		{Name: "distribution_domain", Description: "Edge distribution domain", Module: "edge", Output: "domain_name", Required: true},
		{Name: "access_key_id", Description: "Automation access key", Module: "accesskey", Output: "access_key_id", Sensitive: true},
		{Name: "access_logs_bucket", Description: "Access log bucket", Module: "storage", Output: "access_logs_bucket"},
	}
}
