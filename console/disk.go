package console

import (
	"github.com/pkg/errors"
	"os"
)

// DiskCapacity is the size of the console's persistent storage
const DiskCapacity = 1024

// Disk is the persistent storage collaborator. Both calls return how many
// bytes were actually transferred; there is no error path.
type Disk interface {
	Read(p []byte) int
	Write(p []byte) int
}

// MemDisk keeps storage in memory
type MemDisk struct {
	data     []byte
	capacity int
}

func NewMemDisk() *MemDisk {
	return &MemDisk{capacity: DiskCapacity}
}

// NewMemDiskWithCapacity creates a disk that silently truncates writes
// larger than capacity
func NewMemDiskWithCapacity(capacity int) *MemDisk {
	return &MemDisk{capacity: capacity}
}

func (d *MemDisk) Read(p []byte) int {
	return copy(p, d.data)
}

func (d *MemDisk) Write(p []byte) int {
	n := len(p)
	if n > d.capacity {
		n = d.capacity
	}
	d.data = append(d.data[:0], p[:n]...)
	return n
}

// Bytes returns a copy of the stored bytes
func (d *MemDisk) Bytes() []byte {
	return append([]byte(nil), d.data...)
}

// FileDisk stores the disk contents in a single file
type FileDisk struct {
	Path string
	// Err holds the last I/O failure, since Disk calls cannot report it
	Err error
}

func NewFileDisk(path string) *FileDisk {
	return &FileDisk{Path: path}
}

func (d *FileDisk) Read(p []byte) int {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			d.Err = errors.Wrapf(err, "reading disk %s", d.Path)
		}
		return 0
	}
	if len(data) > DiskCapacity {
		data = data[:DiskCapacity]
	}
	return copy(p, data)
}

func (d *FileDisk) Write(p []byte) int {
	if len(p) > DiskCapacity {
		p = p[:DiskCapacity]
	}
	if err := os.WriteFile(d.Path, p, 0644); err != nil {
		d.Err = errors.Wrapf(err, "writing disk %s", d.Path)
		return 0
	}
	return len(p)
}
