package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ReadProperties(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Properties
		wantErr bool
	}{
		{
			name: "yaml",
			file: "props.yaml",
			content: `app: demo
region: eu-west-1
tags:
  team: data
`,
			want: Properties{AppName: "demo", Region: "eu-west-1", Tags: map[string]string{"team": "data"}},
		},
		{
			name:    "json",
			file:    "props.json",
			content: `{"app": "demo", "environment": "prod"}`,
			want:    Properties{AppName: "demo", Environment: "prod"},
		},
		{
			name: "toml",
			file: "props.toml",
			content: `app = "demo"
suffix = "blue"
`,
			want: Properties{AppName: "demo", Suffix: "blue"},
		},
		{
			name:    "unsupported extension",
			file:    "props.ini",
			content: "app=demo",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			fpath := filepath.Join(t.TempDir(), tt.file)
			if !assert.NoError(os.WriteFile(fpath, []byte(tt.content), 0644)) {
				return
			}

			props, err := ReadProperties(fpath)
			if tt.wantErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tt.want, props)
		})
	}
}

func Test_DecodeProperties(t *testing.T) {
	assert := assert.New(t)

	props, err := DecodeProperties(map[string]any{
		"app":       "demo",
		"region":    "ap-southeast-2",
		"ephemeral": true, // weakly typed: booleans arrive as "1"/"0"
		"tags":      map[string]any{"team": "data"},
	})
	if !assert.NoError(err) {
		return
	}
	assert.Equal("demo", props.AppName)
	assert.Equal("ap-southeast-2", props.Region)
	assert.Equal("1", props.Ephemeral)
	assert.Equal(map[string]string{"team": "data"}, props.Tags)
}
