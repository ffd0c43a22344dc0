package workout

import "fmt"

// MissingTrainingMaxError reports that a lift the generator needed has no
// entry in the training-max table. It is returned instead of silently
// defaulting to zero, which would prescribe a meaningless empty bar.
type MissingTrainingMaxError struct {
	Lift Lift
}

func (e *MissingTrainingMaxError) Error() string {
	return fmt.Sprintf("missing training max for %s", e.Lift)
}

// ConfigError reports a configuration problem: an unsupported primary lift
// was requested, or the training-max source could not be parsed.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// Configf builds a ConfigError from a format string.
func Configf(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}
