// Package scan tallies classified sshd events.
//
// ScanAuthLog is a pure function of its input lines: every classified event
// bumps its category counter and the ip and user frequency tables; lines no
// pattern matches are skipped. Result wraps a Summary with the metadata the
// CLI prints.
package scan
