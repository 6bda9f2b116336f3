package runtime

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/funkos/internal/space"
	"github.com/funvibe/funkos/internal/types"
)

// Config is the on-disk runtime configuration (funkos.yaml).
type Config struct {
	DefaultSpace     string            `yaml:"default_space,omitempty"`
	DefaultPrecision string            `yaml:"default_precision,omitempty"`
	Layouts          map[string]string `yaml:"layouts,omitempty"`
	EnableUVM        bool              `yaml:"enable_uvm,omitempty"`
}

// LoadConfig reads and parses a runtime configuration file.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &cfg, nil
}

// Apply installs the configuration as the process-wide defaults.
func (c *Config) Apply() error {
	if c.DefaultSpace != "" {
		s, ok := space.ParseSpace(c.DefaultSpace)
		if !ok {
			return errors.Errorf("unknown execution space %q", c.DefaultSpace)
		}
		SetDefaultSpace(s)
	}
	if c.DefaultPrecision != "" {
		p, ok := types.Parse(c.DefaultPrecision)
		if !ok {
			return errors.Errorf("unknown precision %q", c.DefaultPrecision)
		}
		if err := SetDefaultPrecision(p); err != nil {
			return err
		}
	}
	for spaceName, layoutName := range c.Layouts {
		s, ok := space.ParseSpace(spaceName)
		if !ok {
			return errors.Errorf("unknown execution space %q in layouts", spaceName)
		}
		l, ok := space.ParseLayout(layoutName)
		if !ok {
			return errors.Errorf("unknown layout %q for space %q", layoutName, spaceName)
		}
		SetDefaultLayout(s, l)
	}
	if c.EnableUVM {
		EnableUVM()
	}
	return nil
}

// Snapshot returns the currently effective defaults in config form.
func Snapshot() Config {
	st.mu.RLock()
	defer st.mu.RUnlock()
	layouts := make(map[string]string, len(st.layoutOverrides))
	for s, l := range st.layoutOverrides {
		layouts[s.String()] = l.String()
	}
	cfg := Config{
		DefaultSpace:     st.defaultSpace.String(),
		DefaultPrecision: st.defaultPrecision.String(),
		EnableUVM:        st.uvmEnabled,
	}
	if len(layouts) > 0 {
		cfg.Layouts = layouts
	}
	return cfg
}
