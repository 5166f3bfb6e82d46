package battery

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type caseFile struct {
	Cases []Case `toml:"case"`
}

// Load parses the [[case]] tables of a TOML file. Unknown keys, unknown
// kinds, and unknown error names are rejected. Cases without a name are
// named after their position.
func Load(path string) ([]Case, error) {
	var cfg caseFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q: %w", path, undecoded[0].String(), ErrBadCase)
	}
	if !meta.IsDefined("case") || len(cfg.Cases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCases)
	}

	for i := range cfg.Cases {
		c := &cfg.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cfg.Cases, nil
}
