//go:build linux

package probe

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/hostkit/hostkit/pkg/textfile"
)

func statDisk(path string) (DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskUsage{}, textfile.Classify(path, &os.PathError{Op: "statfs", Path: path, Err: err})
	}
	blockSize := uint64(st.Frsize)
	if blockSize == 0 {
		blockSize = uint64(st.Bsize)
	}
	return DiskUsageFrom(path, blockSize, uint64(st.Blocks), uint64(st.Bfree), uint64(st.Bavail)), nil
}

func uname() (OSInfo, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return OSInfo{}, os.NewSyscallError("uname", err)
	}
	return OSInfo{
		System:  unix.ByteSliceToString(u.Sysname[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Version: unix.ByteSliceToString(u.Version[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
