package app

import (
	"runtime"
)

const (
	AppName = "exifrenamer"

	IsUnix = runtime.GOOS == "linux" || runtime.GOOS == "darwin" || runtime.GOOS == "freebsd" || runtime.GOOS == "openbsd"

	DirPerms  = 0755
	FilePerms = 0644

	// BackupSuffix is appended to the original file after an in-place rename.
	BackupSuffix = ".BAK"

	// DateTimestampFormat is the canonical form exiftool prints timestamps in.
	DateTimestampFormat = "2006:01:02 15:04:05"

	// SentinelTimestamp is the all-zero value cameras write when no real
	// capture date was recorded. It counts as "no timestamp".
	SentinelTimestamp = "0000:00:00 00:00:00"

	RegexMedia = "(?i)\\.(png|gif|jpg|jpeg|mpg|mp4|mov|wav|wma)$"
)
