package runner

// Result holds the outcome of a supervised command run.
// Exactly one of the two dispositions applies: a normal exit carries
// ExitCode, a signal-terminated run sets Signaled and leaves ExitCode
// meaningless.
type Result struct {
	ExitCode int    // child exit code; valid only when Signaled is false
	Signaled bool   // child was terminated by a signal
	Stdout   []byte // complete captured stdout
	Stderr   []byte // complete captured stderr
}
