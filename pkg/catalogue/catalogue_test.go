package catalogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackforge/stackforge/pkg/config"
	"github.com/stackforge/stackforge/pkg/environment"
	"github.com/stackforge/stackforge/pkg/stack"
)

func wire(t *testing.T, indicator string) (*stack.Stack, config.Resolved) {
	t.Helper()
	cfg, err := config.Resolve(
		config.Properties{AppName: "demo", Environment: indicator},
		config.StandardDefaults,
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	facts := environment.Classify(cfg)

	registry, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	s, err := stack.NewWirer(registry, cfg, facts).Wire()
	if err != nil {
		t.Fatal(err)
	}
	return s, cfg
}

func Test_CatalogueWiresCleanly(t *testing.T) {
	assert := assert.New(t)

	cfg, err := config.Resolve(config.Properties{AppName: "demo"}, config.StandardDefaults, nil)
	if !assert.NoError(err) {
		return
	}
	registry, err := NewRegistry()
	if !assert.NoError(err) {
		return
	}
	assert.NoError(stack.NewWirer(registry, cfg, environment.Classify(cfg)).Validate())
}

func Test_ConstructionOrderRespectsDependencies(t *testing.T) {
	assert := assert.New(t)

	s, _ := wire(t, "prod")
	index := make(map[string]int)
	for i, name := range s.Order() {
		index[name] = i
	}

	deps := map[string][]string{
		"storage":       {"encryption"},
		"database":      {"network", "encryption"},
		"messaging":     {"encryption"},
		"identity":      {"storage", "database", "messaging"},
		"accesskey":     {"identity"},
		"compute":       {"network", "identity"},
		"observability": {"compute", "database"},
		"edge":          {"storage"},
	}
	for consumer, producers := range deps {
		for _, producer := range producers {
			assert.Less(index[producer], index[consumer], "%s must construct before %s", producer, consumer)
		}
	}
}

func Test_ProductionEnablesTheExtras(t *testing.T) {
	assert := assert.New(t)

	s, _ := wire(t, "production")

	_, ok := s.Instance("accesskey")
	assert.True(ok, "production issues the automation access key")

	storage, _ := s.Instance("storage")
	assert.Contains(storage.Outputs, "access_logs_bucket")
	assert.Equal("true", storage.Outputs["deletion_protection"])
	assert.Equal("true", storage.Outputs["versioning"])

	messaging, _ := s.Instance("messaging")
	assert.Equal("1000", messaging.Outputs["throughput_ceiling"])

	network, _ := s.Instance("network")
	assert.Len(strings.Split(network.Outputs["subnet_ids"], ","), 3)

	observability, _ := s.Instance("observability")
	assert.Contains(observability.Outputs, "cpu_alarm_id")
	assert.Contains(observability.Outputs, "db_alarm_id")

	compute, _ := s.Instance("compute")
	assert.Contains(compute.Outputs, "monitoring_interval_seconds")

	database, _ := s.Instance("database")
	assert.Equal("db.r6g.large", database.Outputs["instance_class"])
	assert.Equal("true", database.Outputs["multi_az"])
}

func Test_DevelopmentMinimizesCost(t *testing.T) {
	assert := assert.New(t)

	s, _ := wire(t, "dev")

	_, ok := s.Instance("accesskey")
	assert.False(ok, "dev never issues the automation access key")

	storage, _ := s.Instance("storage")
	assert.NotContains(storage.Outputs, "access_logs_bucket")
	assert.Equal("false", storage.Outputs["deletion_protection"])
	assert.Equal("false", storage.Outputs["versioning"])

	messaging, _ := s.Instance("messaging")
	assert.Equal("100", messaging.Outputs["throughput_ceiling"])

	network, _ := s.Instance("network")
	assert.Len(strings.Split(network.Outputs["subnet_ids"], ","), 1)

	observability, _ := s.Instance("observability")
	assert.NotContains(observability.Outputs, "cpu_alarm_id")

	database, _ := s.Instance("database")
	assert.Equal("db.t3.micro", database.Outputs["instance_class"])
	assert.Equal("1", database.Outputs["backup_retention_days"])
}

func Test_IdentifiersAreDeterministic(t *testing.T) {
	assert := assert.New(t)

	first, _ := wire(t, "prod")
	second, _ := wire(t, "prod")

	for _, name := range first.Order() {
		a, _ := first.Instance(name)
		b, ok := second.Instance(name)
		if assert.True(ok, name) {
			assert.Equal(a.Outputs, b.Outputs, name)
		}
	}
}

func Test_ExportsReferenceDeclaredOutputs(t *testing.T) {
	assert := assert.New(t)

	registry, err := NewRegistry()
	if !assert.NoError(err) {
		return
	}
	for _, export := range Exports() {
		if export.Scalar != "" {
			continue
		}
		d, ok := registry.Get(export.Module)
		if !assert.True(ok, export.Name) {
			continue
		}
		// conditionally-produced outputs are not declared; they must also
		// not be Required
		declared := false
		for _, out := range d.Outputs {
			if out == export.Output {
				declared = true
				break
			}
		}
		if export.Required {
			assert.True(declared, "required export %q must reference a declared output", export.Name)
		}
	}
}

func Test_ResourceNaming(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("my-app-blue-db", resourceName("My App", "blue", "db"))
	assert.Len(shortID("vpc", "demo", "main"), 12)
	assert.Equal(shortID("vpc", "demo", "main"), shortID("vpc", "demo", "main"))
	assert.NotEqual(shortID("vpc", "demo", "main"), shortID("vpc", "demo", "blue"))
}
