// Package logger is the central log for the application. Entries are tagged
// with the package or subsystem that made them and can be echoed to a writer
// as they arrive.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Permission determines whether a log entry is accepted. it exists so that a
// caller can hand a logging decision to the code it is calling
type Permission bool

const (
	Allow Permission = true
	Deny  Permission = false
)

type entry struct {
	tag    string
	detail string
}

type central struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var log = central{
	echo: os.Stderr,
}

// Log adds an entry to the central log. multi-line details are split into
// one entry per line, all with the same tag
func Log(perm Permission, tag string, detail string) {
	if perm != Allow {
		return
	}

	log.crit.Lock()
	defer log.crit.Unlock()

	for _, d := range strings.Split(detail, "\n") {
		if d == "" {
			continue
		}
		e := entry{tag: tag, detail: d}
		log.entries = append(log.entries, e)
		if log.echo != nil {
			fmt.Fprintf(log.echo, "%s: %s\n", e.tag, e.detail)
		}
	}
}

// Logf adds a formatted entry to the central log
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// SetEcho echoes future entries to w as they arrive. a nil writer turns
// echoing off
func SetEcho(w io.Writer) {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.echo = w
}
