package typelog

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// callerInfo describes the call site a log entry is attributed to.
type callerInfo struct {
	file    string
	routine string
	line    int
}

const unknownCaller = "???"

// callerAt captures the frame skip levels above callerAt's own caller:
// callerAt(0) reports the function that called callerAt, callerAt(1) its
// caller, and so on.
func callerAt(skip int) callerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return callerInfo{file: unknownCaller, routine: unknownCaller}
	}
	routine := unknownCaller
	if fn := runtime.FuncForPC(pc); fn != nil {
		routine = fn.Name()
		// Trim the import path, keep package.Func.
		if i := strings.LastIndexByte(routine, '/'); i >= 0 {
			routine = routine[i+1:]
		}
	}
	return callerInfo{file: filepath.Base(file), routine: routine, line: line}
}

// formatEntry renders the one and only line format:
//
//	Mon Jan  2 15:04:05 2006 [TYPE] message (file routine line)
//
// terminated by a single newline. The timestamp is local wall-clock time at
// second resolution. Message content is passed through verbatim, embedded
// newlines included.
func formatEntry(ts time.Time, label, message string, ci callerInfo) string {
	var b strings.Builder
	b.Grow(len(label) + len(message) + len(ci.file) + len(ci.routine) + 48)
	b.WriteString(ts.Format(time.ANSIC))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(label))
	b.WriteString("] ")
	b.WriteString(message)
	b.WriteString(" (")
	b.WriteString(ci.file)
	b.WriteByte(' ')
	b.WriteString(ci.routine)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(ci.line))
	b.WriteString(")\n")
	return b.String()
}
