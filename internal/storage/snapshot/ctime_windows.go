//go:build windows

package snapshot

import (
	"io/fs"
	"syscall"
	"time"
)

func createdAt(_ string, stat fs.FileInfo) (time.Time, error) {
	data, ok := stat.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return stat.ModTime(), nil
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), nil
}
