package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/order-atlas/pkg/export"
	"github.com/de-tools/order-atlas/pkg/models/api"
	"github.com/de-tools/order-atlas/pkg/services/ingest"
	"github.com/de-tools/order-atlas/pkg/services/pipeline"
)

const (
	defaultStatus = "Complete"
	defaultOrigin = "O"
)

type Handler struct {
	ctrl pipeline.Controller
}

func NewHandler(ctrl pipeline.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

func (h *Handler) GetSummaries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status, origin := filterParams(r)

	summaries, err := h.ctrl.Summaries(ctx, status, origin)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, api.OrderSummary{
			OrderID:     s.OrderID,
			TotalAmount: s.TotalAmount,
			TotalTaxes:  s.TotalTaxes,
		})
	}
	writeJSON(w, r, response)
}

func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status, origin := filterParams(r)

	averages, err := h.ctrl.MonthlyReport(ctx, status, origin)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sorted := export.SortMonthly(averages)
	response := make([]api.MonthlyAverage, 0, len(sorted))
	for _, a := range sorted {
		response = append(response, api.MonthlyAverage{
			Year:      a.Year,
			Month:     a.Month,
			AvgAmount: a.AvgAmount,
			AvgTaxes:  a.AvgTaxes,
		})
	}
	writeJSON(w, r, response)
}

func filterParams(r *http.Request) (string, string) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = defaultStatus
	}
	origin := r.URL.Query().Get("origin")
	if origin == "" {
		origin = defaultOrigin
	}
	return status, origin
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())
	logger.Error().Err(err).Msg("report request failed")

	code := http.StatusInternalServerError
	if errors.Is(err, ingest.ErrInvalidEnum) {
		code = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(api.Error{Message: err.Error()})
}
