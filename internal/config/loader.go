package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds CLI runtime parameters.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format"`
	Metrics   bool   `json:"metrics" yaml:"metrics" toml:"metrics"`
}

// Log formats understood by the CLI.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// WithDefaults fills unspecified fields.
func (c Config) WithDefaults() Config {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = FormatConsole
	}
	return c
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if err := decode(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.LogFormat != "" && cfg.LogFormat != FormatConsole && cfg.LogFormat != FormatJSON {
		return cfg, fmt.Errorf("unsupported log format: %s", cfg.LogFormat)
	}
	return cfg, nil
}

// Scenario is a scripted sequence of edits applied to a demo model.
type Scenario struct {
	Model string `json:"model" yaml:"model" toml:"model"`
	Steps []Step `json:"steps" yaml:"steps" toml:"steps"`
}

// Step is one scenario operation. Which fields matter depends on Op.
type Step struct {
	Op        string `json:"op" yaml:"op" toml:"op"`
	Property  string `json:"property,omitempty" yaml:"property,omitempty" toml:"property,omitempty"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Line      int    `json:"line,omitempty" yaml:"line,omitempty" toml:"line,omitempty"`
	Recursive bool   `json:"recursive,omitempty" yaml:"recursive,omitempty" toml:"recursive,omitempty"`
}

// Scenario operations.
const (
	OpSet        = "set"
	OpAccept     = "accept"
	OpReject     = "reject"
	OpAddLine    = "add-line"
	OpSetLine    = "set-line"
	OpRemoveLine = "remove-line"
	OpPrint      = "print"
)

// Demo models a scenario can drive.
const (
	ModelPerson = "person"
	ModelOrder  = "order"
)

var (
	ops         = []string{OpSet, OpAccept, OpReject, OpAddLine, OpSetLine, OpRemoveLine, OpPrint}
	lineOps     = []string{OpAddLine, OpSetLine, OpRemoveLine}
	models      = []string{ModelPerson, ModelOrder}
	propertyOps = []string{OpSet, OpSetLine}
)

// LoadScenario reads and validates a scenario file. Supported extensions
// are the same as for Load.
func LoadScenario(path string) (Scenario, error) {
	var sc Scenario
	if err := decode(path, &sc); err != nil {
		return sc, err
	}
	if err := sc.Validate(); err != nil {
		return sc, err
	}
	return sc, nil
}

// Validate checks the model name and every step.
func (sc Scenario) Validate() error {
	if !slices.Contains(models, sc.Model) {
		return fmt.Errorf("unknown model %q (want one of %s)", sc.Model, strings.Join(models, ", "))
	}
	for i, st := range sc.Steps {
		switch {
		case !slices.Contains(ops, st.Op):
			return fmt.Errorf("step %d: unknown op %q", i+1, st.Op)
		case slices.Contains(lineOps, st.Op) && sc.Model != ModelOrder:
			return fmt.Errorf("step %d: %s needs the %s model", i+1, st.Op, ModelOrder)
		case slices.Contains(propertyOps, st.Op) && st.Property == "":
			return fmt.Errorf("step %d: %s needs a property", i+1, st.Op)
		case st.Op == OpAddLine && st.Value == nil:
			return fmt.Errorf("step %d: %s needs a product value", i+1, st.Op)
		case st.Line < 0:
			return fmt.Errorf("step %d: negative line index", i+1)
		}
	}
	return nil
}

func decode(path string, v any) error {
	if path == "" {
		return fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, v)
	case ".json":
		return json.Unmarshal(b, v)
	case ".toml":
		return toml.Unmarshal(b, v)
	default:
		return fmt.Errorf("unsupported config extension: %s", ext)
	}
}
