// Package probe reads host counters: uptime, CPU time-in-state, memory and
// filesystem usage, plus the hostname and kernel description.
//
// Procfs readers hang off a Probe rooted at a configurable directory so tests
// can use a fixture tree. Every Read* call is a single synchronous read; any
// failure is returned as a textfile error (not found, permission denied,
// parse, i/o) and is fatal to the caller's snapshot.
//
// The Parse* and *From functions are pure and hold all the arithmetic.
// Filesystem and uname access use golang.org/x/sys/unix and are Linux-only.
package probe
