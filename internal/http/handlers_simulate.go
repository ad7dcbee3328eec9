package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"waiswallet/internal/core"
)

// handleSimulate projects a what-if purchase against the current snapshot
// and renders the result partial. Nothing is persisted; all actual writes
// happen on the backend.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	req, err := parseSimulationForm(r)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid scenario: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	snap, err := s.snapshots.Current(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Snapshot read error", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`<div class="error">Data unavailable</div>`))
		return
	}

	res, err := core.Simulate(req, snap)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, core.ErrUnknownWallet) {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`<div class="error">Invalid scenario: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	if s.templates == nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="placeholder">Templates not loaded</div>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "simulation.html", buildSimulationView(res, snap.Currency)); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "simulation.html")
		_, _ = w.Write([]byte(`<div class="placeholder">Rendering error</div>`))
	}
}

func parseSimulationForm(r *http.Request) (core.SimulationRequest, error) {
	cents, err := core.ParseDecimalToCents(strings.TrimSpace(r.Form.Get("amount")))
	if err != nil {
		return core.SimulationRequest{}, err
	}

	walletID, err := strconv.ParseInt(strings.TrimSpace(r.Form.Get("wallet")), 10, 64)
	if err != nil || walletID <= 0 {
		return core.SimulationRequest{}, core.ErrUnknownWallet
	}

	req := core.SimulationRequest{
		Amount:   core.Money{Cents: cents},
		WalletID: walletID,
		Category: sanitizeInput(r.Form.Get("category")),
		Payment:  core.Straight,
	}

	if r.Form.Get("payment") == string(core.Installment) {
		req.Payment = core.Installment
		term, err := strconv.Atoi(strings.TrimSpace(r.Form.Get("term")))
		if err != nil {
			return core.SimulationRequest{}, core.ErrInvalidTerm
		}
		req.Term = term
	}

	return req, req.Validate()
}
