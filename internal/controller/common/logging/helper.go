package logginghelper

import (
	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

func LogDeleted(date domain.LogDate, remoteIP string) {
	log.WithFields(log.Fields{
		"date":      date,
		"remote_ip": remoteIP,
	}).Info("Log deleted")
}

func LogDeleteFailed(date domain.LogDate, err error) {
	log.WithFields(log.Fields{
		"date":  date,
		"error": err,
	}).Error("Failed to delete log")
}

func LogPageServed(date domain.LogDate, level domain.LogLevel, page, count int) {
	log.WithFields(log.Fields{
		"date":    date,
		"level":   level,
		"page":    page,
		"entries": count,
	}).Debug("Log page served")
}

// RequestLogger writes one logrus line per request.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := log.Fields{
				"type":      "http",
				"remote_ip": v.RemoteIP,
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
			}
			if v.Error != nil {
				log.WithFields(fields).WithError(v.Error).Error("request")
				return nil
			}
			log.WithFields(fields).Info("request")
			return nil
		},
	})
}
