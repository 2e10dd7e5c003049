package middleware

import (
	"encoding/json"
	"net"
	"net/http"
)

// writeError emits the uniform error body all endpoints share.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

// ClientAddr returns the client network address used as the rate-limit and
// token-issuance key. RealIP middleware upstream rewrites RemoteAddr from
// proxy headers; the port is stripped so one client maps to one key.
func ClientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
