package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/testutil"
)

func TestTutorial_Raw(t *testing.T) {
	cmd := TutorialCmd()
	testutil.SetupCobraCommand(cmd, []string{"--raw"})

	output, err := testutil.ExecuteCommand(t, cmd)

	require.NoError(t, err)
	assert.Equal(t, tutorialContent, output)
	assert.Contains(t, output, "# blogdb quick start")
}

func TestTutorial_Rendered(t *testing.T) {
	cmd := TutorialCmd()
	testutil.SetupCobraCommand(cmd, []string{})

	output, err := testutil.ExecuteCommand(t, cmd)

	require.NoError(t, err)
	assert.Contains(t, output, "blogdb quick start")
	assert.Contains(t, output, "Scripting")
}

func TestTutorial_SkipsInit(t *testing.T) {
	assert.False(t, cli.NeedsInit(TutorialCmd()))
}
