package exclusion

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile maps 1:1 to the on-disk YAML exclusion file.
type ruleFile struct {
	// Keys lists exact keys to exclude.
	Keys []string `yaml:"keys"`

	// Patterns lists regular expressions; any matching key is excluded.
	Patterns []string `yaml:"patterns"`
}

// LoadFile reads an exclusion rule file. Environment variables in entries
// are expanded (${VAR} or $VAR), so deployments can parameterize key
// prefixes. A malformed pattern fails the whole load with the file named in
// the error.
func LoadFile(path string) (*Exclusions, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("exclusion: read %s: %w", path, err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("exclusion: parse %s: %w", path, err)
	}

	x := New()
	for _, k := range rf.Keys {
		x.AddKey(os.ExpandEnv(k))
	}
	for _, p := range rf.Patterns {
		if err := x.AddPattern(os.ExpandEnv(p)); err != nil {
			return nil, fmt.Errorf("exclusion: %s: %w", path, err)
		}
	}
	return x, nil
}
