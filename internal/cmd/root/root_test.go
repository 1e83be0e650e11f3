package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blue-build/bluebuild/internal/cmdutil"
	"github.com/blue-build/bluebuild/internal/iostreams"
)

func newTestFactory() *cmdutil.Factory {
	ios, _, _ := iostreams.Test()
	return &cmdutil.Factory{
		Version:   "1.0.0",
		Commit:    "abc1234",
		IOStreams: ios,
	}
}

func TestNewCmdRootSubcommands(t *testing.T) {
	cmd := NewCmdRoot(newTestFactory())

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "drivers")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestNewCmdRootGlobalFlags(t *testing.T) {
	cmd := NewCmdRoot(newTestFactory())

	require.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestNewCmdRootVersionAnnotation(t *testing.T) {
	cmd := NewCmdRoot(newTestFactory())
	assert.Equal(t, "bluebuild version 1.0.0 (abc1234)\n", cmd.Annotations["versionInfo"])
}
