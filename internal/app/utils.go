package app

import (
	"fmt"
	"log"

	tm "github.com/buger/goterm"
	"github.com/ztrue/tracerr"
)

func IsError(e error) bool {
	return e != nil
}

// HandleError terminates the run on any error. Non-fatal conditions are
// handled at the call site and never reach this.
func HandleError(e error) {
	if IsError(e) {
		log.Fatal(fmt.Sprintf("[%s] ERROR: %s", AppName, tracerr.Sprint(tracerr.Wrap(e))))
	}
}

func PrintLn(template string, args ...interface{}) {
	fmt.Printf("["+AppName+"] "+template+"\n", args...)
}

// PrintReplaceLn rewrites the current terminal line, used for the
// per-file progress counter.
func PrintReplaceLn(template string, args ...interface{}) {
	tm.Printf("\033[2K\r"+template, args...)
	tm.Flush()
}

func TotalBytesToString(b int64, useDecimalSystem bool) string {
	unit := int64(1024)
	format := "%.1f %ciB"

	if useDecimalSystem == true {
		// decimal system
		unit = 1000
		format = "%.1f %cB"
	}

	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf(format, float64(b)/float64(div), "kMGTPE"[exp])
}
