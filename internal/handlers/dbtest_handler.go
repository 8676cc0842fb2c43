package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// DBTestHandler exposes connectivity diagnostics: it pings the database,
// runs a count query and reports the masked connection string so
// operators can verify which database the instance is wired to without
// leaking credentials.
type DBTestHandler struct {
	DB  *sql.DB
	DSN string
}

type dbTestResponse struct {
	Connected bool   `json:"connected"`
	UserCount int    `json:"user_count"`
	DSN       string `json:"dsn"`
	Error     string `json:"error,omitempty"`
	CheckedAt string `json:"checked_at"`
}

func (h *DBTestHandler) Test(w http.ResponseWriter, r *http.Request) {
	resp := dbTestResponse{
		DSN:       maskDSN(h.DSN),
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := h.DB.PingContext(r.Context()); err != nil {
		resp.Error = err.Error()
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(resp)
		return
	}

	var count int
	if err := h.DB.QueryRowContext(r.Context(), `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		resp.Error = err.Error()
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(resp)
		return
	}

	resp.Connected = true
	resp.UserCount = count
	json.NewEncoder(w).Encode(resp)
}

// maskDSN hides the credential part of a DSN like
// user:password@tcp(host:port)/dbname so diagnostics never expose it.
func maskDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at == -1 {
		return dsn
	}
	creds := dsn[:at]
	if colon := strings.Index(creds, ":"); colon != -1 {
		return creds[:colon] + ":****" + dsn[at:]
	}
	return "****" + dsn[at:]
}
