package domain

// LatestVersion is the manifest version marker meaning "whatever is newest".
const LatestVersion = "-1"

// Project holds descriptive metadata printed by setup.
type Project struct {
	Title       string
	Description string
	Author      string
	Email       string
	Version     string
	URL         string
}

// Layout describes the structure a project is expected to have.
type Layout struct {
	// Dirs must exist and be directories.
	Dirs []string
	// Packages must be directories, containing PackageMarker when it is set.
	Packages []string
	// PackageMarker is the file every package directory must contain.
	PackageMarker string
	// Modules must be regular files. Entries may be doublestar glob patterns.
	Modules []string
}

// Config is the fully resolved project configuration.
type Config struct {
	Project     Project
	Layout      Layout
	Definitions Definitions
	Manifest    string
	Verbose     bool
	JSONLogs    bool
	// ConfigFile is the path of the loaded config file, empty when defaults are used.
	ConfigFile string
}

// Dependency is a single entry of the dependency manifest.
type Dependency struct {
	Name    string
	Version string
}

// Latest reports whether the dependency is unpinned.
func (d Dependency) Latest() bool {
	return d.Version == "" || d.Version == LatestVersion
}

// Requirement renders the dependency as an installer requirement string.
func (d Dependency) Requirement() string {
	if d.Latest() {
		return d.Name
	}
	return d.Name + d.Version
}

// EntryKind is the kind of a structure entry.
type EntryKind string

const (
	// EntryDirectory is a plain directory entry.
	EntryDirectory EntryKind = "directory"
	// EntryPackage is a package directory entry.
	EntryPackage EntryKind = "package"
	// EntryModule is a module file entry.
	EntryModule EntryKind = "module"
)

// StructureEntry is one checked path of a project.
type StructureEntry struct {
	Kind EntryKind
	Path string
	OK   bool
}

// StructureReport lists the entries checked by a structure validation, in order.
type StructureReport struct {
	Entries []StructureEntry
}

// Add appends an entry to the report.
func (r *StructureReport) Add(kind EntryKind, path string, ok bool) {
	r.Entries = append(r.Entries, StructureEntry{Kind: kind, Path: path, OK: ok})
}

// OK reports whether every entry passed.
func (r *StructureReport) OK() bool {
	for _, e := range r.Entries {
		if !e.OK {
			return false
		}
	}
	return true
}
