package app

import (
	"time"
)

// Context holds the run configuration. It is built once in the CLI action
// and never mutated afterwards.
type Context struct {
	CurrentTime time.Time
	SrcDir      string
	DestDir     string
	Verbose     bool
}

// InPlace reports whether renamed copies go next to the originals instead
// of a separate destination tree.
func (c Context) InPlace() bool {
	return c.DestDir == ""
}

type FileStats struct {
	TotalFiles      int
	RenamedFiles    int
	SkippedFiles    int
	DuplicatedFiles int
	TotalSize       int64
}
