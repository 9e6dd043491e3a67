package assets

import (
	"embed"
	"io/fs"
	"os"
)

var (
	//go:embed all:levels all:images all:audio
	embedded embed.FS
)

// Paths inside the asset FS.
const (
	PeteImage  = "images/pete.png"
	AcornImage = "images/acorn.png"
)

// Embedded returns the assets compiled into the binary.
func Embedded() fs.FS {
	return embedded
}

// Open returns the asset FS. A non-empty dir reads from disk instead, which
// is what level hot reload watches.
func Open(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}
