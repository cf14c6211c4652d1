package http

import (
	"net/http"

	applog "plantoes/internal/log"
)

// handleUpdateConfig replaces the session's billing configuration from the
// form. The report partial refreshes off the config:updated trigger.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	cfg, err := ParseBillingConfig(r.Form)
	if err != nil {
		UnprocessableEntityError("Valores inválidos").Write(w)
		return
	}

	sess := s.sessionFor(w, r)
	if err := sess.SetConfig(cfg); err != nil {
		UnprocessableEntityError("Valores inválidos").Write(w)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "billing config updated",
		applog.FieldSessionID, sess.ID,
		applog.FieldOperation, applog.OpValidate)

	NewHTMXResponse().
		TriggerConfigUpdated().
		TriggerSuccessNotification("Configuração salva").
		BodyHTML(`<div class="success">Configuração salva</div>`).
		Write(w)
}
