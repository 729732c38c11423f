package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultSuitesDir is where declarative suite files are looked up
	DefaultSuitesDir = "suites"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultConfigFile is read from the project path when present
	DefaultConfigFile = "suiterun.yaml"
	// DefaultRepeat is the default number of iterations
	DefaultRepeat = 1
	// DefaultVerbosity is the default output mode
	DefaultVerbosity = VerbosityNormal
	// DefaultLogLevel is the default logrus level
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the default log formatter
	DefaultLogFormat = "text"

	// EnvPrefix prefixes every environment override
	EnvPrefix = "SUITERUN_"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for suite files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"testdata",
}
