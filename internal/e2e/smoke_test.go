package e2e

import (
	"bytes"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/emulator"
)

func TestSmokeFlow(t *testing.T) {
	binaryPath := buildBinary(t)

	backend := httptest.NewServer(emulator.New(
		emulator.WithCredential("smoke-token", "user-smoke"),
	).Handler())
	defer backend.Close()

	env := []string{
		"HOME=" + t.TempDir(),
		"PDECK_SERVER_ENDPOINT=" + backend.URL,
		"PDECK_AUTH_TOKEN=smoke-token",
	}

	_, stderr, err := runPDeck(t, binaryPath, env, "add", "Summarize the attached article")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPDeck(t, binaryPath, env, "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Summarize the attached article")

	id := firstField(t, stdout)

	_, stderr, err = runPDeck(t, binaryPath, env, "edit", id, "Summarize the attached article in one sentence")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runPDeck(t, binaryPath, env, "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "in one sentence")

	_, stderr, err = runPDeck(t, binaryPath, env, "rm", id)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runPDeck(t, binaryPath, env, "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "no prompts\n", stdout)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "pdeck-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pdeck")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build pdeck binary: %s", string(output))
	return binaryPath
}

func runPDeck(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func firstField(t *testing.T, listOutput string) string {
	t.Helper()

	for i := 0; i < len(listOutput); i++ {
		if listOutput[i] == '\t' {
			return listOutput[:i]
		}
	}
	t.Fatalf("no tab-separated id in list output %q", listOutput)
	return ""
}
