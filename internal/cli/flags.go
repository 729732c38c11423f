package cli

import "suiterun/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath  string
	ConfigFile   string
	SuitesDir    string
	Filter       string
	Repeat       int
	FailFast     bool
	OnlyFailed   bool
	Verbosity    string
	JUnitPath    string
	MetricsFile  string
	NoProgress   bool
	OpenFailures bool
	ShowTests    bool
	LogLevel     string
	LogFormat    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath:  f.ProjectPath,
		ConfigFile:   f.ConfigFile,
		SuitesDir:    f.SuitesDir,
		Filter:       f.Filter,
		Repeat:       f.Repeat,
		FailFast:     f.FailFast,
		OnlyFailed:   f.OnlyFailed,
		Verbosity:    f.Verbosity,
		JUnitPath:    f.JUnitPath,
		MetricsFile:  f.MetricsFile,
		NoProgress:   f.NoProgress,
		OpenFailures: f.OpenFailures,
		ShowTests:    f.ShowTests,
		LogLevel:     f.LogLevel,
		LogFormat:    f.LogFormat,
	}
}
