package config

const (
	defaultSourcesDir = "~/.local/share/scaleforge/sources"
	defaultScalesDir  = "~/.local/share/scaleforge/scales"
	defaultLogDir     = "~/.local/share/scaleforge/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	policyFail = "fail"
	policyLog  = "log"
)

// KnownSources lists the source modules in build order.
var KnownSources = []string{"tetrachord", "xenharmonikon", "damusc", "mailing-lists"}

// Default returns a Config populated with repository defaults: the
// strict validator variant and all sources enabled.
func Default() Config {
	sources := make([]string, len(KnownSources))
	copy(sources, KnownSources)
	return Config{
		Paths: Paths{
			SourcesDir: defaultSourcesDir,
			ScalesDir:  defaultScalesDir,
			LogDir:     defaultLogDir,
		},
		Build: Build{
			Sources:            sources,
			AllowMarkup:        false,
			LargeIntegerPolicy: policyFail,
			LastTonePolicy:     policyLog,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
