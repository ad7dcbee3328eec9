package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"waiswallet/internal/core"
)

// parseGranularity reads the "period" query parameter, defaulting to
// monthly. Unknown values fall back to the default rather than erroring;
// a bad filter should not break a dashboard panel.
func parseGranularity(r *http.Request) core.Granularity {
	g := core.Granularity(strings.TrimSpace(r.URL.Query().Get("period")))
	if g.Validate() != nil {
		return core.Monthly
	}
	return g
}

// parseReferenceDate reads the "date" query parameter (YYYY-MM-DD). The
// fallback is the snapshot's own reference date, so period navigation and
// "today" evaluate through the same path.
func parseReferenceDate(r *http.Request, fallback core.Date) core.Date {
	v := strings.TrimSpace(r.URL.Query().Get("date"))
	if v == "" {
		return fallback
	}
	d, err := core.ParseDate(v)
	if err != nil {
		return fallback
	}
	return d
}

// parseTxFilter reads the history view's direction and wallet filters.
func parseTxFilter(r *http.Request) core.TxFilter {
	f := core.TxFilter{}
	switch r.URL.Query().Get("mode") {
	case "income":
		f.Direction = "income"
	case "expense":
		f.Direction = "expense"
	}
	if v := strings.TrimSpace(r.URL.Query().Get("wallet")); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			f.WalletID = id
		}
	}
	return f
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
