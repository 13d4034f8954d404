package textfile

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds. Match them with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrParse            = errors.New("parse error")
	ErrIO               = errors.New("i/o error")
)

// permissionHint is attached to every ErrPermissionDenied error.
const permissionHint = "try running with sudo"

// PathError records a failed read or parse of one file.
type PathError struct {
	Kind error  // one of the Err* sentinels
	Path string // file that failed
	Hint string // optional remediation, shown after the message
	Err  error  // underlying cause, may be nil for parse errors
}

func (e *PathError) Error() string {
	var msg string
	switch {
	case e.Kind == ErrNotFound:
		msg = fmt.Sprintf("file not found: %s", e.Path)
	case e.Kind == ErrPermissionDenied:
		msg = fmt.Sprintf("permission denied reading: %s", e.Path)
	case e.Err != nil:
		msg = fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	default:
		msg = fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	if e.Hint != "" {
		msg += ". " + capitalize(e.Hint) + "."
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Classify wraps an OS error returned while opening or reading path.
// A nil err yields nil. Errors that are already a *PathError pass through.
func Classify(path string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &PathError{Kind: ErrNotFound, Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &PathError{Kind: ErrPermissionDenied, Path: path, Hint: permissionHint, Err: err}
	default:
		return &PathError{Kind: ErrIO, Path: path, Err: err}
	}
}

// ParseError reports malformed contents in path.
func ParseError(path, format string, args ...any) error {
	return &PathError{Kind: ErrParse, Path: path, Err: fmt.Errorf(format, args...)}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
