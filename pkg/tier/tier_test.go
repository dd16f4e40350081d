package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackforge/stackforge/pkg/config"
	"github.com/stackforge/stackforge/pkg/environment"
)

func facts(t *testing.T, indicator string, ephemeral string) environment.Facts {
	t.Helper()
	props := config.Properties{AppName: "demo", Environment: indicator, Ephemeral: ephemeral}
	cfg, err := config.Resolve(props, config.StandardDefaults, nil)
	if err != nil {
		t.Fatal(err)
	}
	return environment.Classify(cfg)
}

func Test_Enabled(t *testing.T) {
	allFeatures := []Feature{Alarms, AccessKeys, DetailedMonitoring, MultiZone, ExtendedRetention, AccessLogging}

	tests := []struct {
		name      string
		indicator string
		want      bool
	}{
		{name: "production enables the extras", indicator: "prod", want: true},
		{name: "dev omits the extras", indicator: "dev", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			f := facts(t, tt.indicator, "")
			for _, feature := range allFeatures {
				assert.Equal(tt.want, Enabled(feature, f), feature.String())
			}
		})
	}
}

func Test_DeletionProtection(t *testing.T) {
	tests := []struct {
		name      string
		indicator string
		ephemeral string
		want      bool
	}{
		{name: "production", indicator: "prod", want: true},
		{name: "production but ephemeral stays deletable", indicator: "prod", ephemeral: "true", want: false},
		{name: "dev", indicator: "dev", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tt.want, DeletionProtection(facts(t, tt.indicator, tt.ephemeral)))
		})
	}
}

func Test_Lookup(t *testing.T) {
	assert := assert.New(t)

	prod := Lookup(facts(t, "production", ""))
	dev := Lookup(facts(t, "dev", ""))

	assert.Equal("db.r6g.large", prod.DatabaseInstanceClass)
	assert.Equal("db.t3.micro", dev.DatabaseInstanceClass)
	assert.Greater(prod.BackupRetentionDays, dev.BackupRetentionDays)
	assert.Greater(prod.LogRetentionDays, dev.LogRetentionDays)
	assert.Greater(prod.ThroughputCeiling, dev.ThroughputCeiling)
	assert.Greater(prod.ComputeMemoryMB, dev.ComputeMemoryMB)
}

func Test_SubnetCount(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, SubnetCount(facts(t, "prod", "")))
	assert.Equal(1, SubnetCount(facts(t, "dev", "")))
}

func Test_GateBeforeClassificationPanics(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { Enabled(Alarms, environment.Facts{}) })
	assert.Panics(func() { DeletionProtection(environment.Facts{}) })
	assert.Panics(func() { Lookup(environment.Facts{}) })
}
