package handler

import (
	"net/http"

	"github.com/mugeems/summaryapp/internal/adapter"
	"github.com/mugeems/summaryapp/internal/metrics"
)

type adapterStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string                   `json:"status"`
	Adapters map[string]adapterStatus `json:"adapters"`
}

// Health reports per-provider availability. Status is "degraded" when any
// provider is missing its client; the endpoint itself always answers 200.
func Health(adapters map[string]adapter.Adapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Adapters: make(map[string]adapterStatus, len(adapters))}

		for id, a := range adapters {
			s := adapterStatus{Name: a.Provider().Label(), Available: a.Available()}
			if s.Available {
				metrics.AdapterAvailable.WithLabelValues(id).Set(1)
			} else {
				metrics.AdapterAvailable.WithLabelValues(id).Set(0)
				s.Reason = unavailableReason(a.Provider())
				resp.Status = "degraded"
			}
			resp.Adapters[id] = s
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func unavailableReason(p adapter.Provider) string {
	switch p {
	case adapter.ProviderGemini, adapter.ProviderGroq:
		return "no API key"
	default:
		return "unavailable"
	}
}
