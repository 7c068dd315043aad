package install

import (
	"fmt"
	"os/exec"
)

// toolName is the interpreter-discovery and registration tool.
const toolName = "jupyter-kernelspec"

// PrerequisiteMissingError reports that the registration tool is absent while
// a session marked it required. It fires before any generation work.
type PrerequisiteMissingError struct {
	Tool string
}

func (e *PrerequisiteMissingError) Error() string {
	return fmt.Sprintf("required tool '%s' was not found on PATH", e.Tool)
}

// Locator finds the registration tool. The default uses PATH lookup; tests
// inject their own.
type Locator func() (string, bool)

// LookupTool is the production Locator.
func LookupTool() (string, bool) {
	path, err := exec.LookPath(toolName)
	if err != nil {
		return "", false
	}
	return path, true
}

// MissingToolError returns the error for an absent-but-required tool.
func MissingToolError() error {
	return &PrerequisiteMissingError{Tool: toolName}
}
