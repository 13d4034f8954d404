// Package compute turns raw probe readings into health verdicts.
//
// status.go maps a value onto OK / WARNING / CRITICAL with inclusive lower
// bounds and folds several checks into an overall status (first CRITICAL
// wins).
//
// cpu.go derives CPU utilisation from two /proc/stat snapshots taken a fixed
// delay apart. The Sampler's Sleep hook lets tests skip the real pause.
package compute
