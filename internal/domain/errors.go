package domain

import "fmt"

// DataSourceError reports a failed directory query. Its message is the
// underlying failure's description so it can be shown as-is.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return e.Err.Error()
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
