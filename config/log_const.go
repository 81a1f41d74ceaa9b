package config

// Log line prefixes used by the service.
const (
	LogPrefixInfo  = "[APP] [INFO] "
	LogPrefixError = "[APP] [ERROR] "
)

// Color constants for console logging
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)
