package config

// Environment variables read by Load.
const (
	EnvFixtures  = "FIX"
	EnvQuestions = "QCSV"
	EnvOutputDir = "OUT"
	EnvTemplate  = "PDF"
	EnvConfig    = "REQCOVER_CONFIG"
	EnvLogLevel  = "REQCOVER_LOG_LEVEL"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// applyEnv applies environment variable overrides. Empty values are ignored.
func (c *Config) applyEnv(lookup LookupFunc) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(EnvFixtures, &c.Fixtures)
	set(EnvQuestions, &c.Questions)
	set(EnvOutputDir, &c.OutputDir)
	set(EnvTemplate, &c.Template)
	set(EnvLogLevel, &c.Logging.Level)
}
