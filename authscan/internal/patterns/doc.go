// Package patterns classifies sshd log lines into authentication events.
//
// Two sets exist:
//   - extended (default): failed_password, failed_publickey, failed_preauth,
//     accepted_password, invalid_user
//   - base: failed_password, accepted_password, invalid_user
//
// A Set is built once by the caller and passed to the scanner; there is no
// package-level compiled state. Patterns are unanchored and tried in order;
// the first match wins. User and IP are maximal non-whitespace runs, and the
// "invalid user " prefix on failed password/publickey lines is optional and
// not captured.
package patterns
