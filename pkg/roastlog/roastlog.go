// Package roastlog appends one plain-text record per successful roast. It is
// an audit trail, not a queryable store: no rotation, no schema beyond one
// tab-separated line per entry.
package roastlog

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"wahalabot/pkg/roast"
)

type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// Open opens (or creates) the audit file for appending.
func Open(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open roast log: %w", err)
	}
	return &Logger{file: file}, nil
}

// Record appends one line: timestamp, level, gender, input, output. Write
// failures are logged and swallowed; the audit trail never fails a request.
func (l *Logger) Record(level roast.Level, gender roast.Gender, input, output string) {
	line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\n",
		time.Now().UTC().Format(time.RFC3339),
		level,
		gender,
		escape(input),
		escape(output),
	)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.WriteString(line); err != nil {
		log.Printf("Error writing roast log entry: %v", err)
	}
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// escape keeps each record on a single line.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
