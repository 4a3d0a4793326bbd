package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"reqcover/internal/diagnostic"
	"reqcover/internal/report"
	"reqcover/internal/requirement"
)

// DefaultFile is read when no configuration path is given. It may be absent.
const DefaultFile = "reqcover.yaml"

const (
	DefaultFixtures        = "./Fixes"
	DefaultQuestionsName   = "questions.csv"
	DefaultTemplateName    = "pdf_temp_export.pdf"
	DefaultReportsDirName  = "reports"
	DefaultCoverageName    = "phase2_coverage.csv"
	DefaultMissingEvidence = "phase2_missing_evidence.csv"
	DefaultSummaryName     = "phase2_summary.json"
	DefaultBindingMapName  = "binding_map_v1.json"
	DefaultLogLevel        = "info"
	DefaultLogEncoding     = "json"
)

// Config is the resolved run configuration.
type Config struct {
	// Fixtures is the directory the input and output defaults hang off.
	Fixtures  string `yaml:"fixtures"`
	Questions string `yaml:"questions"`
	Template  string `yaml:"template"`
	OutputDir string `yaml:"output_dir"`
	// Requirements narrows or reorders the tracked codes. Empty means
	// CR1..CR10 then A..G.
	Requirements []string      `yaml:"requirements,omitempty"`
	Reports      ReportsConfig `yaml:"reports"`
	Logging      LoggingConfig `yaml:"logging"`
}

// ReportsConfig names the artifacts. Relative names resolve under OutputDir.
type ReportsConfig struct {
	Coverage        string `yaml:"coverage"`
	MissingEvidence string `yaml:"missing_evidence"`
	Summary         string `yaml:"summary"`
	BindingMap      string `yaml:"binding_map"`
	// Proposals toggles the proposed_add_if_gap column; nil means on.
	Proposals *bool `yaml:"proposals,omitempty"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Load reads the YAML file at path and layers the environment on top.
// An empty path selects DefaultFile, which is allowed to be missing; an
// explicit path that does not exist is a *diagnostic.ConfigError.
// A nil lookup reads the process environment.
func Load(path string, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	explicit := path != ""
	if !explicit {
		if p, ok := lookup(EnvConfig); ok && p != "" {
			path, explicit = p, true
		} else {
			path = DefaultFile
		}
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	case errors.Is(err, os.ErrNotExist):
		return nil, diagnostic.NewMissingFile("config", path)
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv(lookup)

	return cfg, nil
}

// Overrides carries command-line values. Empty fields leave the
// configuration untouched.
type Overrides struct {
	Questions string
	Template  string
	OutputDir string
	Verbose   bool
}

// Override applies command-line values, the last layer before defaults.
func (c *Config) Override(o Overrides) {
	if o.Questions != "" {
		c.Questions = o.Questions
	}

	if o.Template != "" {
		c.Template = o.Template
	}

	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}

	if o.Verbose {
		c.Logging.Level = "debug"
	}
}

// ApplyDefaults fills every empty setting, deriving input and output
// paths from Fixtures.
func (c *Config) ApplyDefaults() {
	if c.Fixtures == "" {
		c.Fixtures = DefaultFixtures
	}

	if c.Questions == "" {
		c.Questions = filepath.Join(c.Fixtures, DefaultQuestionsName)
	}

	if c.Template == "" {
		c.Template = filepath.Join(c.Fixtures, DefaultTemplateName)
	}

	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.Fixtures, DefaultReportsDirName)
	}

	if c.Reports.Coverage == "" {
		c.Reports.Coverage = DefaultCoverageName
	}

	if c.Reports.MissingEvidence == "" {
		c.Reports.MissingEvidence = DefaultMissingEvidence
	}

	if c.Reports.Summary == "" {
		c.Reports.Summary = DefaultSummaryName
	}

	if c.Reports.BindingMap == "" {
		c.Reports.BindingMap = DefaultBindingMapName
	}

	if c.Reports.Proposals == nil {
		on := true
		c.Reports.Proposals = &on
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Logging.Encoding == "" {
		c.Logging.Encoding = DefaultLogEncoding
	}
}

// Validate checks the settings that cannot be repaired by defaults.
func (c *Config) Validate() error {
	switch c.Logging.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging encoding: %s (valid: json, console)", c.Logging.Encoding)
	}

	if _, err := c.RequirementSet(); err != nil {
		return err
	}

	return nil
}

// Path resolves an artifact name against OutputDir. Absolute names are
// returned unchanged.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.OutputDir, name)
}

// ReportPaths returns the destinations of the three run artifacts.
func (c *Config) ReportPaths() report.Paths {
	return report.Paths{
		Coverage:        c.Path(c.Reports.Coverage),
		MissingEvidence: c.Path(c.Reports.MissingEvidence),
		Summary:         c.Path(c.Reports.Summary),
	}
}

// BindingMapPath returns the destination of the binding map.
func (c *Config) BindingMapPath() string {
	return c.Path(c.Reports.BindingMap)
}

// ReportOptions returns the emitter options.
func (c *Config) ReportOptions() report.Options {
	return report.Options{Proposals: c.Reports.Proposals == nil || *c.Reports.Proposals}
}

// RequirementSet returns the tracked codes. Each configured entry must
// name a known code; spelling variants such as "cr-03" are accepted and
// canonicalized.
func (c *Config) RequirementSet() (requirement.Set, error) {
	if len(c.Requirements) == 0 {
		return requirement.Default(), nil
	}

	known := requirement.Default()
	codes := make([]requirement.Code, 0, len(c.Requirements))

	for _, raw := range c.Requirements {
		code, ok := known.MatchTag(raw)
		if !ok {
			return requirement.Set{}, fmt.Errorf("invalid requirement code: %q", raw)
		}

		codes = append(codes, code)
	}

	return requirement.NewSet(codes...), nil
}
