package cli

import "errors"

// Exit codes of the open-lnk binary.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUnresolved = 2
)

// ExitError carries a process exit code. Its message has already been
// reported when Reported is set.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFailure
}

// IsReported reports whether err has already been shown to the user.
func IsReported(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee) && ee.Reported
}
