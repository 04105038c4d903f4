// Package libfile reads and writes the portable TOML snapshot of a prompt
// library, used by the export and import commands.
package libfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"promptdeck/internal/domain"
)

const (
	libraryFileMode = 0o600
	libraryDirMode  = 0o700
	tempFilePattern = ".library-*.toml.tmp"
)

// Export writes the prompts to path as a versioned TOML document. The file
// is replaced atomically so a crash never leaves a half-written library.
func Export(path string, prompts []domain.Prompt) error {
	file := fileSchema{Version: currentSchemaVersion}
	for _, prompt := range prompts {
		file.Prompts = append(file.Prompts, toSchema(prompt))
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode library file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), libraryDirMode); err != nil {
		return fmt.Errorf("create library directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp library file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp library file: %w", err)
	}

	if err := tempFile.Chmod(libraryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp library file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp library file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace library file: %w", err)
	}

	cleanup = false

	return nil
}

// Import reads a library file written by Export. Entries with blank text are
// rejected so a bad file is caught before any document is created.
func Import(path string) ([]domain.Prompt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("library file %s does not exist", path)
		}
		return nil, fmt.Errorf("read library file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode library file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	prompts := make([]domain.Prompt, 0, len(file.Prompts))
	for i, entry := range file.Prompts {
		if domain.BlankText(entry.Text) {
			return nil, fmt.Errorf("library entry %d has empty text", i+1)
		}
		prompts = append(prompts, fromSchema(entry))
	}

	return prompts, nil
}

func toSchema(prompt domain.Prompt) promptSchema {
	entry := promptSchema{
		ID:   string(prompt.ID),
		Text: prompt.Text,
	}
	if !prompt.CreatedAt.IsZero() {
		entry.CreatedAt = prompt.CreatedAt.UTC().Format(time.RFC3339Nano)
	}

	return entry
}

func fromSchema(entry promptSchema) domain.Prompt {
	prompt := domain.Prompt{
		ID:   domain.PromptID(entry.ID),
		Text: entry.Text,
	}
	if entry.CreatedAt != "" {
		if stamp, err := time.Parse(time.RFC3339Nano, entry.CreatedAt); err == nil {
			prompt.CreatedAt = stamp
		}
	}

	return prompt
}
