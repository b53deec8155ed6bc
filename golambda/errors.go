package golambda

import (
	"errors"
	"fmt"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

// NoActiveFunctionError is returned when an operation is called without a
// function name and no function has been created or selected.
type NoActiveFunctionError struct {
	*goaws.ClientErr
}

func NewNoActiveFunctionError() error {
	return &NoActiveFunctionError{
		goaws.NewClientError(errors.New("no active function")),
	}
}

// FunctionConfigError is returned by CreateFunction when the runtime, role
// or handler has not been configured.
type FunctionConfigError struct {
	*goaws.ClientErr
}

func NewFunctionConfigError(cfg FunctionConfig) error {
	missing := make([]string, 0, 3)
	if cfg.Runtime == "" {
		missing = append(missing, "runtime")
	}
	if cfg.Role == "" {
		missing = append(missing, "role")
	}
	if cfg.Handler == "" {
		missing = append(missing, "handler")
	}
	return &FunctionConfigError{
		goaws.NewClientError(fmt.Errorf("function config incomplete: missing %v", missing)),
	}
}

// ArchiveError is returned when a file cannot be added to a deployment archive.
type ArchiveError struct {
	*goaws.ClientErr
}

func NewArchiveError(path string, err error) error {
	return &ArchiveError{
		goaws.NewClientError(fmt.Errorf("archive %s: %w", path, err)),
	}
}
