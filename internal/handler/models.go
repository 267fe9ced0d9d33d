package handler

import (
	"net/http"

	"github.com/mugeems/summaryapp/internal/adapter"
)

func Models(models []adapter.ModelInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models)
	}
}
