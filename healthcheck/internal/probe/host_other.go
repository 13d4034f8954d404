//go:build !linux

package probe

import (
	"errors"
	"fmt"
	"runtime"
)

func statDisk(path string) (DiskUsage, error) {
	return DiskUsage{}, fmt.Errorf("probe: disk usage on %s: %w", runtime.GOOS, errors.ErrUnsupported)
}

func uname() (OSInfo, error) {
	return OSInfo{}, fmt.Errorf("probe: uname on %s: %w", runtime.GOOS, errors.ErrUnsupported)
}
