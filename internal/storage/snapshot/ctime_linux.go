//go:build linux

package snapshot

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// createdAt returns the birth time reported by statx. Filesystems or
// kernels that do not report one fall back to the modification time.
func createdAt(path string, stat fs.FileInfo) (time.Time, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return time.Time{}, err
		}
		return stat.ModTime(), nil
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return stat.ModTime(), nil
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
