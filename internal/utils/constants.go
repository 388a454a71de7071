package utils

const (
	// IgnoreFileName is the name of the project's ignore file.
	IgnoreFileName = ".ignore"
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".sdir"
	// ConfigFileName is the global configuration file name.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the per-project configuration file name.
	LocalConfigFileName = ".sdir.yaml"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal execution errors.
	ApplicationExecutionFailedMessage = "sdir failed"
	// DebugEnvironmentVariable enables debug logging when set to a non-empty value.
	DebugEnvironmentVariable = "SDIR_DEBUG"
)
