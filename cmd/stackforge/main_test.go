package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RootCommands(t *testing.T) {
	assert := assert.New(t)

	root := newRootCmd()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(names, "synth")
	assert.Contains(names, "graph")
}
