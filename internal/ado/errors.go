package ado

import "errors"

// Error kinds for remote failures. Commands match on these with errors.Is
// to distinguish credential problems and missing resources from everything
// else; the messages users see are attached where the failure is classified.
var (
	ErrAuth     = errors.New("authentication failed")
	ErrNotFound = errors.New("resource not found")
	ErrRemote   = errors.New("remote api error")
)

// apiError carries the user-facing message for a classified remote failure
// while remaining matchable against its kind sentinel.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.kind }

// FieldError reports a display-column path that does not resolve on a
// record. It aborts the entire table render.
type FieldError struct {
	Path string
}

func (e *FieldError) Error() string {
	return "Unable to access field '" + e.Path + "'"
}
