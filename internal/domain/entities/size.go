package entities

import (
	"github.com/dustin/go-humanize"
)

// PackageSize is the on-disk footprint of one installed package.
type PackageSize struct {
	Name  string
	Size  int64
	Files int
}

// SizeReport summarizes the footprint of a project's node_modules.
type SizeReport struct {
	TotalSize             int64
	Packages              []PackageSize // largest first
	DependenciesInstalled bool
}

// FormatSize renders a byte count with binary units.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}
