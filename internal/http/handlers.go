package http

import (
	"log/slog"
	"net/http"

	"waiswallet/internal/core"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	snap, err := s.snapshots.Current(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Snapshot read error", "error", err)
		http.Error(w, "snapshot unavailable", http.StatusServiceUnavailable)
		return
	}

	data := struct {
		Currency   string
		Symbol     string
		Date       string
		Wallets    []core.Wallet
		Categories []core.Category
	}{
		Currency:   snap.Currency,
		Symbol:     core.CurrencySymbol(snap.Currency),
		Date:       snap.ReferenceDate.Format("2006-01-02"),
		Wallets:    snap.Wallets,
		Categories: snap.ExpenseCategories(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderPartial executes one partial template against the current
// snapshot. Failures render a placeholder div instead of breaking the
// whole panel.
func (s *Server) renderPartial(w http.ResponseWriter, r *http.Request, name string, build func(core.Snapshot) any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap, err := s.snapshots.Current(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Snapshot read error", "error", err, "partial", name)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`<div class="placeholder">Data unavailable, retrying soon</div>`))
		return
	}

	if s.templates == nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="placeholder">Templates not loaded</div>`))
		return
	}

	if err := s.templates.ExecuteTemplate(w, name, build(snap)); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", name)
		_, _ = w.Write([]byte(`<div class="placeholder">Rendering error</div>`))
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	g := parseGranularity(r)
	s.renderPartial(w, r, "dashboard.html", func(snap core.Snapshot) any {
		return buildDashboardView(snap, parseReferenceDate(r, snap.ReferenceDate), g)
	})
}

func (s *Server) handleWallets(w http.ResponseWriter, r *http.Request) {
	s.renderPartial(w, r, "wallets.html", func(snap core.Snapshot) any {
		return buildWalletsView(snap)
	})
}

func (s *Server) handleCashback(w http.ResponseWriter, r *http.Request) {
	s.renderPartial(w, r, "cashback.html", func(snap core.Snapshot) any {
		return buildCashbackView(snap)
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	g := parseGranularity(r)
	s.renderPartial(w, r, "report.html", func(snap core.Snapshot) any {
		return buildReportView(snap, parseReferenceDate(r, snap.ReferenceDate), g)
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	g := parseGranularity(r)
	filter := parseTxFilter(r)
	s.renderPartial(w, r, "history.html", func(snap core.Snapshot) any {
		return buildHistoryView(snap, parseReferenceDate(r, snap.ReferenceDate), g, filter)
	})
}
