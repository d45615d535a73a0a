package typelog

const (
	// TargetStdout and TargetStderr are sentinel destination names selecting
	// the process standard streams instead of a file path. Matching is
	// case-insensitive.
	TargetStdout = "STDOUT"
	TargetStderr = "STDERR"

	emptyString = ""
)

const (
	errMsgConfigInvalid = "Logger configuration is invalid."
	errMsgEmptyTypes    = "Types is present but empty."
	errMsgRegistryClash = "Registry cannot be combined with Types or InvalidType."
)
