package handler

import (
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	flashSessionName = "clynicx_flash"
	flashKeySuccess  = "success"
	flashKeyError    = "error"

	flashMaxAge = 5 * 60
)

// Toast is a one-shot notification shown after an auth action.
type Toast struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Flashes queues toasts in a signed cookie until the client reads them.
type Flashes struct {
	store  sessions.Store
	logger *zap.Logger
}

func NewFlashes(secret string, secure bool, logger *zap.Logger) *Flashes {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flashes{store: store, logger: logger}
}

func (f *Flashes) Success(w http.ResponseWriter, r *http.Request, message string) {
	f.add(w, r, flashKeySuccess, message)
}

func (f *Flashes) Error(w http.ResponseWriter, r *http.Request, message string) {
	f.add(w, r, flashKeyError, message)
}

func (f *Flashes) add(w http.ResponseWriter, r *http.Request, key, message string) {
	// A tampered or stale cookie yields a fresh session alongside the error.
	sess, _ := f.store.Get(r, flashSessionName)
	sess.AddFlash(message, key)
	if err := sess.Save(r, w); err != nil {
		f.logger.Warn("failed to save flash", zap.Error(err))
	}
}

// Pop returns queued toasts and clears them.
func (f *Flashes) Pop(w http.ResponseWriter, r *http.Request) []Toast {
	sess, _ := f.store.Get(r, flashSessionName)

	toasts := []Toast{}
	for _, key := range []string{flashKeySuccess, flashKeyError} {
		for _, v := range sess.Flashes(key) {
			if msg, ok := v.(string); ok {
				toasts = append(toasts, Toast{Kind: key, Message: msg})
			}
		}
	}

	if len(toasts) > 0 {
		if err := sess.Save(r, w); err != nil {
			f.logger.Warn("failed to clear flashes", zap.Error(err))
		}
	}
	return toasts
}
