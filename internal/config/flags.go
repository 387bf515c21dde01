package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagEngine        = flag.String("engine", "", "Remesh engine name")
	flagMode          = flag.String("mode", "", "Vertex placement mode: centroid, mass_point, sharp")
	flagIdentityLoops = flag.Bool("identity-loops", false, "Pass an identity loop array to the engine")
	flagLogFile       = flag.String("log-file", "", "Also write logs to this file")
	flagWriteConfig   = flag.String("write-config", "", "Write the effective config as YAML to this path (\"-\" for stdout) and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, empty if unset.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagEngine != "" {
		cfg.Remesh.Engine = *flagEngine
	}
	if *flagMode != "" {
		cfg.Remesh.Mode = *flagMode
	}
	if *flagIdentityLoops {
		cfg.Remesh.IdentityLoops = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
