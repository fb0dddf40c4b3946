package cmd

// ErrExitWith describes how the program should exit when the command fails.
type ErrExitWith struct {
	// Msg to print out to the user
	Msg string
	// Err is the wrapped error
	Err error
	// ShowUsage indicates if the command usage should be printed
	ShowUsage bool
	// ExitCode the program should exit with
	ExitCode int
}

func (e ErrExitWith) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Err.Error()
}

func (e ErrExitWith) Cause() error { return e.Err }
