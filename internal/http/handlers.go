package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"plantoes/internal/core"
	applog "plantoes/internal/log"
	"plantoes/internal/report"
	"plantoes/internal/session"
)

const sessionCookieName = "plantoes_session"

// sessionFor resolves the caller's session from the cookie, creating a fresh
// one (and setting the cookie) when missing or expired.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		if sess, ok := s.sessions.Get(c.Value); ok {
			return sess
		}
	}

	sess := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	applog.FromContext(r.Context()).InfoContext(r.Context(), "session created",
		applog.FieldSessionID, sess.ID)
	return sess
}

// cachedReport returns the rendered report for the session, reusing the
// cached copy while the session revision is unchanged.
func (s *Server) cachedReport(sess *session.Session) (report.Report, error) {
	records, cfg, rev := sess.Snapshot()
	key := sess.ID + ":" + strconv.FormatUint(rev, 10)
	if rep, ok := s.reportCache.Get(key); ok {
		return rep, nil
	}
	rep, err := s.builder.Build(records, cfg)
	if err != nil {
		return report.Report{}, err
	}
	s.reportCache.Set(key, rep)
	return rep, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

type slotOption struct {
	Value string
	Hours int
}

type recurrenceOption struct {
	Value string
	Label string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "templates not loaded",
			applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	sess := s.sessionFor(w, r)
	cfg := sess.Config()

	slots := make([]slotOption, 0, len(core.Slots()))
	for _, slot := range core.Slots() {
		hours, err := core.SlotHours(slot)
		if err != nil {
			continue
		}
		slots = append(slots, slotOption{Value: string(slot), Hours: hours})
	}

	data := struct {
		Today       string
		Sectors     []core.Sector
		Slots       []slotOption
		Recurrences []recurrenceOption
		Name        string
		HourlyRate  string
		Bonus       string
		MonthLabel  string
	}{
		Today:   time.Now().Format("2006-01-02"),
		Sectors: core.Sectors(),
		Slots:   slots,
		Recurrences: []recurrenceOption{
			{Value: string(core.RecurrenceNone), Label: "Isolado"},
			{Value: string(core.RecurrenceWeekly), Label: "Semanal"},
			{Value: string(core.RecurrenceBiweekly), Label: "Quinzenal"},
		},
		Name:       cfg.PhysicianName,
		HourlyRate: formFieldAmount(cfg.HourlyRate),
		Bonus:      formFieldAmount(cfg.ProductivityBonus),
		MonthLabel: cfg.MonthLabel,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "index template execution failed",
			applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// formFieldAmount renders a money value the way it is typed into the form,
// dropping the cents when they are zero.
func formFieldAmount(m core.Money) string {
	if m.Cents%100 == 0 {
		return strconv.FormatInt(m.Units(), 10)
	}
	return fmt.Sprintf("%d,%02d", m.Units(), m.Cents%100)
}
