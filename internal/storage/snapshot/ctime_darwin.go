//go:build darwin

package snapshot

import (
	"io/fs"
	"syscall"
	"time"
)

func createdAt(_ string, stat fs.FileInfo) (time.Time, error) {
	st, ok := stat.Sys().(*syscall.Stat_t)
	if !ok {
		return stat.ModTime(), nil
	}
	return time.Unix(st.Birthtimespec.Unix()), nil
}
