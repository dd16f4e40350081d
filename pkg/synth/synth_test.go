package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackforge/stackforge/pkg/config"
)

func bindingNames(result *Result) []string {
	names := make([]string, 0, len(result.Bindings))
	for _, b := range result.Bindings {
		names = append(names, b.Name)
	}
	return names
}

func Test_RunDev(t *testing.T) {
	assert := assert.New(t)

	result, err := Run(Request{
		Properties: config.Properties{AppName: "demo"},
	})
	if !assert.NoError(err) {
		return
	}

	assert.False(result.Facts.ProductionGrade)
	assert.Equal("dev", result.Config.Environment)

	names := bindingNames(result)
	assert.Contains(names, "region")
	assert.Contains(names, "vpc_id")
	assert.Contains(names, "database_endpoint")
	assert.NotContains(names, "access_key_id", "gated export must be absent in dev")
	assert.NotContains(names, "access_logs_bucket")
}

func Test_RunProduction(t *testing.T) {
	assert := assert.New(t)

	result, err := Run(Request{
		Properties: config.Properties{AppName: "demo", Environment: "prod"},
	})
	if !assert.NoError(err) {
		return
	}

	assert.True(result.Facts.ProductionGrade)

	names := bindingNames(result)
	assert.Contains(names, "access_key_id")
	assert.Contains(names, "access_logs_bucket")

	for _, b := range result.Bindings {
		assert.NotEmpty(b.Value, b.Name)
		if b.Name == "database_endpoint" || b.Name == "access_key_id" {
			assert.True(b.Sensitive, b.Name)
		}
	}
}

func Test_RunHonorsOverrides(t *testing.T) {
	assert := assert.New(t)

	overrides := func(key string) (string, bool) {
		if key == config.OverrideRegion {
			return " eu-central-1 ", true
		}
		return "", false
	}

	result, err := Run(Request{
		Properties: config.Properties{AppName: "demo", Region: "us-west-2"},
		Overrides:  overrides,
	})
	if !assert.NoError(err) {
		return
	}
	assert.Equal("eu-central-1", result.Config.Region)
}

func Test_RunFailsWithoutAppName(t *testing.T) {
	assert := assert.New(t)

	_, err := Run(Request{})
	assert.Error(err)
	var missing *config.MissingFieldError
	assert.ErrorAs(err, &missing)
}

func Test_RunIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	req := Request{Properties: config.Properties{AppName: "demo", Environment: "prod"}}
	first, err := Run(req)
	assert.NoError(err)
	second, err := Run(req)
	assert.NoError(err)

	assert.Equal(first.Bindings, second.Bindings)
	assert.Equal(first.Stack.Order(), second.Stack.Order())
}
