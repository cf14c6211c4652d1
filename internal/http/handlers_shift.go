package http

import (
	"errors"
	"fmt"
	"net/http"

	"plantoes/internal/core"
	applog "plantoes/internal/log"
)

func (s *Server) handleCreateShift(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	params, err := ParseShiftParams(r.Form)
	if err != nil {
		UnprocessableEntityError(shiftErrorMessage(err)).Write(w)
		return
	}

	sess := s.sessionFor(w, r)
	count, err := sess.AddShift(params.Date, params.Sector, params.Slot, params.Recurrence)
	if err != nil {
		UnprocessableEntityError(shiftErrorMessage(err)).Write(w)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "shifts registered",
		applog.FieldSessionID, sess.ID,
		applog.FieldShiftDate, params.Date.FormatBR(),
		applog.FieldSector, string(params.Sector),
		applog.FieldTimeSlot, string(params.Slot),
		applog.FieldRecurrence, string(params.Recurrence),
		applog.FieldRecords, count)

	msg := "Plantão registrado"
	if count > 1 {
		msg = fmt.Sprintf("%d plantões registrados", count)
	}
	NewHTMXResponse().
		TriggerShiftCreated(count).
		TriggerSuccessNotification(msg).
		BodyHTML(`<div class="success">` + msg + `</div>`).
		Write(w)
}

func (s *Server) handleDeleteShift(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodPost, http.MethodDelete); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	index, err := ParseIndex(r.Form, "index")
	if err != nil {
		BadRequestError("Linha inválida").Write(w)
		return
	}

	sess := s.sessionFor(w, r)
	if err := sess.DeleteShift(index); err != nil {
		if errors.Is(err, core.ErrIndexOutOfRange) {
			// The list on screen is stale; the client re-fetches it.
			NewHTMXResponse().
				Status(http.StatusUnprocessableEntity).
				TriggerShiftDeleted().
				TriggerErrorNotification("Linha inexistente, lista atualizada").
				BodyHTML(`<div class="error">Linha inexistente</div>`).
				Write(w)
			return
		}
		InternalServerError("Erro ao excluir plantão").Write(w)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "shift deleted",
		applog.FieldSessionID, sess.ID,
		"index", index)

	NewHTMXResponse().
		TriggerShiftDeleted().
		TriggerSuccessNotification("Plantão excluído").
		BodyHTML(`<div class="success">Plantão excluído</div>`).
		Write(w)
}

func (s *Server) handleClearShifts(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}

	sess := s.sessionFor(w, r)
	removed := sess.ClearShifts()

	applog.FromContext(r.Context()).InfoContext(r.Context(), "ledger cleared",
		applog.FieldSessionID, sess.ID,
		applog.FieldRecords, removed)

	NewHTMXResponse().
		TriggerLedgerCleared(removed).
		TriggerSuccessNotification("Lista de plantões esvaziada").
		BodyHTML(`<div class="success">Lista esvaziada</div>`).
		Write(w)
}

type shiftRow struct {
	Index  int
	Date   string
	Sector string
	Slot   string
	Hours  int
}

// handleShiftList renders the shift table partial in canonical order. Row
// indices match what the delete endpoint expects.
func (s *Server) handleShiftList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	sess := s.sessionFor(w, r)
	records := sess.Shifts()

	rows := make([]shiftRow, 0, len(records))
	totalHours := 0
	for i, rec := range records {
		rows = append(rows, shiftRow{
			Index:  i,
			Date:   rec.Date.FormatBR(),
			Sector: string(rec.Sector),
			Slot:   string(rec.Slot),
			Hours:  rec.Hours,
		})
		totalHours += rec.Hours
	}

	data := struct {
		Rows       []shiftRow
		TotalHours int
	}{Rows: rows, TotalHours: totalHours}

	if s.templates == nil {
		_, _ = fmt.Fprintf(w, `<section id="shift-list"><div class="placeholder">%d plantões</div></section>`, len(rows))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "shift_list.html", data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "shift list template execution failed",
			applog.FieldError, err)
		_, _ = w.Write([]byte(`<section id="shift-list"><div class="placeholder">Erro carregando plantões</div></section>`))
	}
}

func shiftErrorMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		return "Data inválida"
	case errors.Is(err, core.ErrInvalidSector):
		return "Setor inválido"
	case errors.Is(err, core.ErrUnknownSlot):
		return "Horário inválido"
	case errors.Is(err, core.ErrInvalidRecurrenceMode):
		return "Recorrência inválida"
	default:
		return "Dados inválidos"
	}
}
