package handler

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mugeems/summaryapp/internal/adapter"
	"github.com/mugeems/summaryapp/internal/dispatch"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type providerOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Options   []providerOption
	Models    []adapter.ModelInfo
	Text      string
	Summary   string
	Error     string
	Submitted bool
}

// Page serves the summarizer form on GET / and runs a dispatch on POST /.
func Page(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{Models: d.Models()}
		selected := d.Default()

		switch r.Method {
		case http.MethodGet, http.MethodHead:
		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
					return
				}
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}

			data.Submitted = true
			data.Text = r.PostFormValue("text")
			if p := r.PostFormValue("provider"); p != "" {
				selected = adapter.Provider(p)
			}

			res, err := d.Dispatch(r.Context(), selected, data.Text)
			if err != nil {
				data.Error = dispatch.DisplayMessage(err)
			} else {
				data.Summary = res.Summary
			}
		default:
			w.Header().Set("Allow", "GET, HEAD, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		for _, p := range d.Providers() {
			data.Options = append(data.Options, providerOption{
				Value:    string(p),
				Label:    p.Label(),
				Selected: p == selected,
			})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			slog.ErrorContext(r.Context(), "render page", "error", err)
		}
	}
}
