//go:build !linux && !darwin && !windows

package snapshot

import (
	"io/fs"
	"time"
)

// createdAt uses the modification time where no birth time is exposed.
func createdAt(_ string, stat fs.FileInfo) (time.Time, error) {
	return stat.ModTime(), nil
}
