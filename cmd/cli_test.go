package cmd

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/emulator"
)

// startBackend runs an in-process server and points the CLI at it through the
// environment. A fixed credential keeps every invocation on the same user.
func startBackend(t *testing.T) {
	t.Helper()

	backend := httptest.NewServer(emulator.New(
		emulator.WithCredential("fixture-token", "user-fixture"),
	).Handler())
	t.Cleanup(backend.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("PDECK_SERVER_ENDPOINT", backend.URL)
	t.Setenv("PDECK_AUTH_TOKEN", "fixture-token")
}

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	startBackend(t)

	stdout, _, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestListEmptyLibrary(t *testing.T) {
	startBackend(t)

	stdout, _, err := executeCLI(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "no prompts\n", stdout)
}

func TestAddThenListShowsPrompt(t *testing.T) {
	startBackend(t)

	_, _, err := executeCLI(t, "add", "Write a haiku about databases")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Write a haiku about databases")
}

func TestAddRejectsBlankText(t *testing.T) {
	startBackend(t)

	_, _, err := executeCLI(t, "add", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt text is empty")
}

func TestEditReplacesText(t *testing.T) {
	startBackend(t)

	_, _, err := executeCLI(t, "add", "draft wording")
	require.NoError(t, err)

	id := firstPromptID(t)

	_, _, err = executeCLI(t, "edit", id, "final wording")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "final wording")
	assert.NotContains(t, stdout, "draft wording")
}

func TestEditUnknownPromptFails(t *testing.T) {
	startBackend(t)

	_, _, err := executeCLI(t, "edit", "no-such-id", "whatever")
	require.Error(t, err)
}

func TestRmRemovesPrompt(t *testing.T) {
	startBackend(t)

	_, _, err := executeCLI(t, "add", "short lived")
	require.NoError(t, err)

	id := firstPromptID(t)

	_, _, err = executeCLI(t, "rm", id)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "no prompts\n", stdout)
}

func TestExportThenImportRestoresPrompts(t *testing.T) {
	startBackend(t)

	_, _, err := executeCLI(t, "add", "first prompt")
	require.NoError(t, err)
	_, _, err = executeCLI(t, "add", "second prompt")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "library.toml")
	stdout, _, err := executeCLI(t, "export", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "exported 2 prompts")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first prompt")

	stdout, _, err = executeCLI(t, "import", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 2 prompts")

	stdout, _, err = executeCLI(t, "list")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(stdout, "prompt\n"))
}

func TestImportMissingFileFails(t *testing.T) {
	startBackend(t)

	_, _, err := executeCLI(t, "import", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func firstPromptID(t *testing.T) string {
	t.Helper()

	stdout, _, err := executeCLI(t, "list")
	require.NoError(t, err)

	line := strings.SplitN(stdout, "\n", 2)[0]
	fields := strings.SplitN(line, "\t", 2)
	require.NotEmpty(t, fields[0])
	return fields[0]
}
