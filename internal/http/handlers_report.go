package http

import (
	"net/http"
	"strconv"

	applog "plantoes/internal/log"
)

// handleReportPartial renders the report preview partial.
func (s *Server) handleReportPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	sess := s.sessionFor(w, r)
	rep, err := s.cachedReport(sess)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "report build failed",
			applog.FieldSessionID, sess.ID,
			applog.FieldError, err)
		_, _ = w.Write([]byte(`<section id="report"><div class="placeholder">Erro gerando relatório</div></section>`))
		return
	}

	data := struct {
		Empty bool
		Text  string
	}{Empty: rep.Empty, Text: rep.Text()}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="report"><div class="placeholder">Relatório indisponível</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "report.html", data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "report template execution failed",
			applog.FieldError, err)
		_, _ = w.Write([]byte(`<section id="report"><div class="placeholder">Erro gerando relatório</div></section>`))
	}
}

// handleReportDownload serves the report as a plain text attachment.
func (s *Server) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	rep, err := s.cachedReport(sess)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "report build failed",
			applog.FieldSessionID, sess.ID,
			applog.FieldError, err)
		http.Error(w, "erro gerando relatório", http.StatusInternalServerError)
		return
	}
	if rep.Empty {
		http.Error(w, "nenhum plantão registrado", http.StatusNotFound)
		return
	}

	text := rep.Text()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.Filename()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	_, _ = w.Write([]byte(text))
}
