package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingInjectionTarget is returned when an injection is declared without a target name.
	ErrMissingInjectionTarget = zerr.New("injection missing key: target")

	// ErrResolutionFailed is matched by every error returned when an injected capability cannot be resolved.
	ErrResolutionFailed = zerr.New("could not inject capability")

	// ErrCapabilityNotFound is returned when a capability name is not known to the resolver.
	ErrCapabilityNotFound = zerr.New("capability not found")

	// ErrAttributeNotFound is returned when a capability has no member with the requested name.
	ErrAttributeNotFound = zerr.New("attribute not found")

	// ErrDuplicateCapability is returned when a capability name is registered twice.
	ErrDuplicateCapability = zerr.New("capability already registered")

	// ErrInvalidArgument is returned when an injected argument is missing or has an unexpected type.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrMissingResourceName is returned when a resource lookup is made without a name.
	ErrMissingResourceName = zerr.New("resource name cannot be empty")

	// ErrResourceNotFound is returned when a resource name is unknown.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrManifestNotFound is returned when the dependency manifest is missing.
	ErrManifestNotFound = zerr.New("missing dependency manifest")

	// ErrManifestReadFailed is returned when the dependency manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read dependency manifest")

	// ErrInvalidManifestLine is returned when a manifest line has no dependency name.
	ErrInvalidManifestLine = zerr.New("invalid dependency manifest line")

	// ErrInvalidDirectory is returned when an expected project directory is missing or not a directory.
	ErrInvalidDirectory = zerr.New("invalid project directory")

	// ErrInvalidPackage is returned when an expected package directory or its marker file is missing.
	ErrInvalidPackage = zerr.New("invalid project package")

	// ErrInvalidModule is returned when an expected module file is missing or not a file.
	ErrInvalidModule = zerr.New("invalid project module")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be parsed.
	ErrConfigEnvFailed = zerr.New("failed to parse environment overrides")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrConsoleOpenFailed is returned when a console cannot be assembled from its capabilities.
	ErrConsoleOpenFailed = zerr.New("failed to open console")

	// ErrFollowFailed is returned when a log file cannot be followed.
	ErrFollowFailed = zerr.New("failed to follow log file")
)
