package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookie = "medfleet_flash"

// Flash kinds drive the notice styling on the rendered page.
const (
	flashSuccess = "success"
	flashError   = "error"
	flashWarning = "warning"
)

// Flash is a one-shot notice carried across a redirect.
type Flash struct {
	Kind    string
	Message string
}

// setFlash stores a notice in a session cookie. The value is base64
// encoded because cookie values cannot carry spaces or separators.
func setFlash(w http.ResponseWriter, kind, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and clears the notice cookie. Returns a zero Flash when
// no notice is pending or the cookie is malformed.
func popFlash(w http.ResponseWriter, r *http.Request) Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return Flash{}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Flash{}
	}
	kind, message, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return Flash{}
	}
	return Flash{Kind: kind, Message: message}
}
