package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const (
	FormatJSON = "json"
	FormatText = "text"

	timestampFormat = "2006-01-02 15:04:05"
)

func callerPrettyfier(frame *runtime.Frame) (function string, file string) {
	return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
}

// SetupLogger configures the global logrus logger. Unknown levels fall back
// to info, unknown formats to json.
func SetupLogger(level, format string) {
	loggerLevel, err := log.ParseLevel(level)
	log.SetReportCaller(true)

	switch format {
	case FormatText:
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  timestampFormat,
			CallerPrettyfier: callerPrettyfier,
		})
	default:
		log.SetFormatter(&log.JSONFormatter{
			CallerPrettyfier: callerPrettyfier,
			TimestampFormat:  timestampFormat,
		})
	}

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(loggerLevel)
	}
}
