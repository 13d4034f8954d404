// Package textfile reads small text files (procfs entries, log files) and
// classifies the failures into the error kinds both hostkit tools report:
//
//   - ErrNotFound: the path does not exist
//   - ErrPermissionDenied: access denied; the error carries a sudo hint
//   - ErrParse: the file was read but its contents are malformed
//   - ErrIO: any other read failure
//
// Every error returned by this package is a *PathError. It unwraps to both
// the kind sentinel and the underlying OS error, so callers can match with
// errors.Is(err, textfile.ErrNotFound) as well as errors.Is(err, fs.ErrNotExist).
//
// ReadLines never fails on encoding: invalid UTF-8 sequences are replaced
// with U+FFFD by the golang.org/x/text UTF-8 decoder.
package textfile
