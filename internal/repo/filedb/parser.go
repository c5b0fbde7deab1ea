package filedb

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/Egor213/LogViewer/internal/domain"
)

const (
	readBufferSize  = 64 * 1024
	headerTimestamp = "2006-01-02 15:04:05"
)

// [2024-01-01 10:00:00] production.ERROR: message {"context":1}
var headerPattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2})[^\]]*\] [\w-]+\.([A-Za-z]+):(?: |$)`)

// ParseEntries splits a daily log into entries. A header line starts an
// entry; the lines up to the next header form its stack. Lines preceding the
// first header are dropped. Lines have no length limit.
func ParseEntries(r io.Reader, filter domain.LogLevel) ([]domain.LogEntry, error) {
	reader := bufio.NewReaderSize(r, readBufferSize)

	var (
		entries []domain.LogEntry
		current *domain.LogEntry
		stack   []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Stack = strings.TrimRight(strings.Join(stack, "\n"), "\n")
		if filter.Matches(current.Level) {
			entries = append(entries, *current)
		}
		current = nil
		stack = stack[:0]
	}

	handle := func(line string) {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				stack = append(stack, line)
			}
			return
		}

		flush()
		ts, _ := time.ParseInLocation(headerTimestamp, strings.Replace(m[1], "T", " ", 1), time.Local)
		current = &domain.LogEntry{
			Level:     domain.ParseLevel(m[2]),
			Header:    line,
			Timestamp: ts,
		}
	}

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			handle(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	flush()

	if entries == nil {
		entries = []domain.LogEntry{}
	}
	return entries, nil
}
