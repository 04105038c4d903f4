package libfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/domain"
)

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	stamp := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	in := []domain.Prompt{
		{ID: "p1", Text: "Write a haiku about databases", CreatedAt: stamp},
		{ID: "p2", Text: "Summarize this article"},
	}

	require.NoError(t, Export(path, in))

	out, err := Import(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, domain.PromptID("p1"), out[0].ID)
	assert.Equal(t, "Write a haiku about databases", out[0].Text)
	assert.True(t, out[0].CreatedAt.Equal(stamp))
	assert.True(t, out[1].CreatedAt.IsZero())
}

func TestExportSetsRestrictivePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	require.NoError(t, Export(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestExportOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	require.NoError(t, Export(path, []domain.Prompt{{ID: "p1", Text: "first"}}))
	require.NoError(t, Export(path, []domain.Prompt{{ID: "p2", Text: "second"}}))

	out, err := Import(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "second", out[0].Text)
}

func TestImportRejectsMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestImportRejectsNewerSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	_, err := Import(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported library schema version")
}

func TestImportRejectsBlankText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	body := "version = 1\n\n[[prompts]]\ntext = \"   \"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := Import(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty text")
}

func TestImportRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [not toml"), 0o600))

	_, err := Import(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode library file")
}
