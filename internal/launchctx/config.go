package launchctx

// Config holds the file-configurable knobs. Zero values are filled in by
// DefaultConfig; the CLI layers flags and WMLAUNCH_* variables on top.
type Config struct {
	Target        string   `yaml:"target" mapstructure:"target"`
	EnvCandidates []string `yaml:"env_candidates" mapstructure:"env_candidates"`
	Pause         bool     `yaml:"pause" mapstructure:"pause"`
	LogLevel      string   `yaml:"log_level" mapstructure:"log_level"`
	LogFile       string   `yaml:"log_file,omitempty" mapstructure:"log_file"`
}

// DefaultConfig returns the configuration used when no wmlaunch.yaml is
// present next to the binary.
func DefaultConfig() Config {
	return Config{
		Target:        DefaultTarget,
		EnvCandidates: append([]string(nil), DefaultEnvCandidates...),
		Pause:         true,
		LogLevel:      "info",
	}
}

// Apply overlays non-zero config values onto a resolved context.
func (c *Context) Apply(cfg Config) {
	if cfg.Target != "" {
		c.Target = cfg.Target
	}
	if len(cfg.EnvCandidates) > 0 {
		c.EnvCandidates = append([]string(nil), cfg.EnvCandidates...)
	}
}
