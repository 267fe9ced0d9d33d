package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mugeems/summaryapp/internal/adapter"
	"github.com/mugeems/summaryapp/internal/dispatch"
)

type summarizeRequest struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

type summarizeResponse struct {
	Summary   string `json:"summary"`
	Provider  string `json:"provider"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// Summarize serves POST /api/summarize. An omitted provider selects the default one.
func Summarize(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		provider := d.Default()
		if req.Provider != "" {
			provider = adapter.Provider(req.Provider)
		}

		res, err := d.Dispatch(r.Context(), provider, req.Text)
		if err != nil {
			writeDispatchError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summarizeResponse{
			Summary:   res.Summary,
			Provider:  string(res.Provider),
			ElapsedMs: res.Elapsed.Milliseconds(),
		})
	}
}

func writeDispatchError(w http.ResponseWriter, err error) {
	var pe *adapter.ProviderError
	switch {
	case errors.As(err, &pe):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:    dispatch.DisplayMessage(err),
			Provider: string(pe.Provider),
		})
	case errors.Is(err, dispatch.ErrEmptyInput), errors.Is(err, dispatch.ErrUnknownProvider):
		writeError(w, http.StatusBadRequest, dispatch.DisplayMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("summarize failed: %v", err))
	}
}
