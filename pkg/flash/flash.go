// Package flash carries one-shot notices between requests in a cookie
// session. A notice set during one request is readable during the next one
// and is dropped after that unless it is consumed earlier or reflashed.
package flash

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const (
	SessionName = "logviewer"

	kindKey    = "flash_kind"
	messageKey = "flash_message"
	ageKey     = "flash_age"

	ageNew = "new"
	ageOld = "old"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

type Notice struct {
	Kind    Kind
	Message string
}

// Middleware ages the pending notice and saves the session right before the
// response headers are written. It must run after session.Middleware.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(SessionName, c)
		if err != nil {
			log.WithError(err).Debug("Flash session could not be decoded, starting a new one")
		}
		if sess == nil {
			return next(c)
		}

		switch sess.Values[ageKey] {
		case ageNew:
			sess.Values[ageKey] = ageOld
		case ageOld:
			forget(sess)
		}

		c.Response().Before(func() {
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				log.WithError(err).Error("Failed to save flash session")
			}
		})

		return next(c)
	}
}

func get(c echo.Context) *sessions.Session {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		log.WithError(err).Debug("Flash session unavailable")
	}
	return sess
}

func forget(sess *sessions.Session) {
	delete(sess.Values, kindKey)
	delete(sess.Values, messageKey)
	delete(sess.Values, ageKey)
}

// Set replaces any pending notice. The notice becomes visible on the next
// request.
func Set(c echo.Context, kind Kind, message string) {
	sess := get(c)
	if sess == nil {
		return
	}
	sess.Values[kindKey] = string(kind)
	sess.Values[messageKey] = message
	sess.Values[ageKey] = ageNew
}

// Peek returns the pending notice without removing it.
func Peek(c echo.Context) (Notice, bool) {
	sess := get(c)
	if sess == nil {
		return Notice{}, false
	}
	kind, ok := sess.Values[kindKey].(string)
	if !ok {
		return Notice{}, false
	}
	message, _ := sess.Values[messageKey].(string)
	return Notice{Kind: Kind(kind), Message: message}, true
}

func Pending(c echo.Context) bool {
	_, ok := Peek(c)
	return ok
}

// Consume returns the pending notice and removes it.
func Consume(c echo.Context) (Notice, bool) {
	n, ok := Peek(c)
	if ok {
		forget(get(c))
	}
	return n, ok
}

// Reflash keeps the pending notice alive for one more request.
func Reflash(c echo.Context) {
	sess := get(c)
	if sess == nil {
		return
	}
	if _, ok := sess.Values[kindKey]; ok {
		sess.Values[ageKey] = ageNew
	}
}
