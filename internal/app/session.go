package app

import (
	"net/http"

	"github.com/Egor213/LogViewer/internal/config"
	"github.com/gorilla/sessions"
)

func NewSessionStore(cfg config.Session) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		MaxAge:   cfg.MaxAge,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
