package libfile

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Prompts []promptSchema `toml:"prompts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported library schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type promptSchema struct {
	ID        string `toml:"id,omitempty"`
	Text      string `toml:"text"`
	CreatedAt string `toml:"created_at,omitempty"`
}
