// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"renvo-cli/pkg/types"
)

// ExitError carries a process exit code out of RunE handlers without forcing
// os.Exit mid-command. Execute unwraps it after fang has finished error
// display: ExitPartial (1) means some files failed while the run completed,
// ExitFatal (2) means the run aborted before or during the batch.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// fatalExit wraps err as an ExitError that aborts the whole run.
func fatalExit(err error) *ExitError {
	return &ExitError{Code: types.ExitFatal, Err: err}
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
