package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stardustlabs/stardust/internal/app"
	"github.com/stardustlabs/stardust/internal/testutil"
)

func TestRootCommand_DefaultLaunchesTUI(t *testing.T) {
	launched := false
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error {
		launched = true
		return nil
	}
	defer func() { launchTUIFunc = orig }()

	container := newTestContainer(testutil.NewMockTaskRepository())
	root := NewRootCommand(container, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{})

	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, launched)
}

func TestRootCommand_Version(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	root := NewRootCommand(container, "1.2.3")

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	err := root.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	root := NewRootCommand(container, "test")

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"add", "list", "done", "rm", "export", "import"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
