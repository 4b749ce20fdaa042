package storageclient

import (
	"fmt"
	"strings"
)

// FileType selects the storage target of an operation.
// The zero value is Disk.
type FileType int

const (
	// Disk addresses a path on the local filesystem.
	Disk FileType = iota
	// Blob addresses "container/key" in the remote store.
	Blob
)

func (t FileType) String() string {
	switch t {
	case Disk:
		return "disk"
	case Blob:
		return "blob"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

// ParseFileType parses "disk" or "blob" (case-insensitive).
// An empty string yields Disk.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "disk":
		return Disk, nil
	case "blob", "remote":
		return Blob, nil
	default:
		return Disk, fmt.Errorf("unknown file type %q", s)
	}
}
