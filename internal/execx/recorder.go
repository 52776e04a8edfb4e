package execx

// Recorder is a Runner that records commands instead of executing them.
// Tests use it to assert on the exact argv a handler constructs.
type Recorder struct {
	// Commands holds every command passed to Run, in order.
	Commands []Command

	// Err, when non-nil, is returned from every Run call to simulate
	// a failing external tool.
	Err error
}

// Run records cmd and returns Err.
func (r *Recorder) Run(cmd Command) error {
	r.Commands = append(r.Commands, cmd)
	return r.Err
}
