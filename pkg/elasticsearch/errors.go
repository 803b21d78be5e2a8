package elasticsearch

import "fmt"

// ConnectivityError reports that the cluster was unreachable or answered
// with something the service could not use. It aborts the whole run, since
// every later step depends on state gathered by the failed call.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("elasticsearch unreachable during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConnectivityError) Unwrap() error { return e.Err }

// RejectedError reports that the cluster refused a single template
// document. Only that family fails; the run carries on with the rest.
type RejectedError struct {
	Template string
	Err      error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("template %q rejected by cluster: %v", e.Template, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RejectedError) Unwrap() error { return e.Err }
