package config

// Scaffoldfile represents the structure of the scaffold.yaml configuration file.
type Scaffoldfile struct {
	Version  string     `yaml:"version"`
	Root     string     `yaml:"root"`
	Project  ProjectDTO `yaml:"project"`
	Layout   *LayoutDTO `yaml:"layout"`
	Manifest string     `yaml:"manifest"`
	Logs     LogsDTO    `yaml:"logs"`
	Verbose  bool       `yaml:"verbose"`
}

// ProjectDTO holds the project metadata section.
type ProjectDTO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Email       string `yaml:"email"`
	Version     string `yaml:"version"`
	URL         string `yaml:"url"`
}

// LayoutDTO holds the expected project structure.
type LayoutDTO struct {
	Dirs          []string `yaml:"dirs"`
	Packages      []string `yaml:"packages"`
	PackageMarker string   `yaml:"packageMarker"`
	Modules       []string `yaml:"modules"`
}

// LogsDTO overrides the log locations. Relative paths are resolved against the root,
// and file names against the log directory.
type LogsDTO struct {
	Dir   string `yaml:"dir"`
	Info  string `yaml:"info"`
	Error string `yaml:"error"`
}

// Overrides are read from SCAFFOLD_* environment variables and win over the file.
type Overrides struct {
	Verbose  *bool  `env:"VERBOSE"`
	JSONLogs *bool  `env:"JSON_LOGS"`
	LogDir   string `env:"LOG_DIR"`
	InfoLog  string `env:"INFO_LOG"`
	ErrorLog string `env:"ERROR_LOG"`
}

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "SCAFFOLD_"
