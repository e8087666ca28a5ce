package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
}

func TestMigrateCmd_SQLite(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")

	root := newRootCmd()
	root.SetArgs([]string{"migrate"})
	assert.NoError(t, root.Execute())
}
