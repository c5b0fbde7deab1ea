package domain

import (
	"strings"
	"time"
)

// DateLayout is the format of a LogDate.
const DateLayout = "2006-01-02"

type LogLevel string

const (
	LevelEmergency LogLevel = "emergency"
	LevelAlert     LogLevel = "alert"
	LevelCritical  LogLevel = "critical"
	LevelError     LogLevel = "error"
	LevelWarning   LogLevel = "warning"
	LevelNotice    LogLevel = "notice"
	LevelInfo      LogLevel = "info"
	LevelDebug     LogLevel = "debug"

	// LevelAll is the filter value that matches every severity.
	LevelAll LogLevel = "all"
)

var levels = []LogLevel{
	LevelEmergency,
	LevelAlert,
	LevelCritical,
	LevelError,
	LevelWarning,
	LevelNotice,
	LevelInfo,
	LevelDebug,
}

// Levels returns the severities from most to least severe.
func Levels() []LogLevel {
	out := make([]LogLevel, len(levels))
	copy(out, levels)
	return out
}

func (l LogLevel) IsSeverity() bool {
	for _, lvl := range levels {
		if l == lvl {
			return true
		}
	}
	return false
}

// Matches reports whether an entry of level entryLevel passes the filter l.
// Anything that is not a known severity filters like LevelAll.
func (l LogLevel) Matches(entryLevel LogLevel) bool {
	if !l.IsSeverity() {
		return true
	}
	return l == entryLevel
}

func ParseLevel(s string) LogLevel {
	return LogLevel(strings.ToLower(strings.TrimSpace(s)))
}

// LogDate identifies one day's log, formatted with DateLayout.
type LogDate = string

func FormatDate(t time.Time) LogDate {
	return t.Format(DateLayout)
}

func ValidDate(date LogDate) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

type LogEntry struct {
	Level     LogLevel  `db:"level" json:"level"`
	Header    string    `db:"header" json:"header"`
	Stack     string    `db:"stack" json:"stack"`
	Timestamp time.Time `db:"logged_at" json:"timestamp"`
}
