// Package http provides http transport for the profile read models
package http

import (
	stdhttp "net/http"

	"questhud/internal/modkit/httpkit"
	"questhud/internal/services/profile/domain"
)

// Register mounts profile endpoints on the given router
func Register(r httpkit.Router, reader domain.ReaderPort, session domain.SessionPort) {
	h := &handlers{reader: reader, session: session}

	httpkit.Get(r, "/progression", h.progression)
	httpkit.Get(r, "/calendar", h.calendar)
	httpkit.PostJSON[domain.CalendarQuery](r, "/calendar", h.calendarAt)
	httpkit.Get(r, "/status", h.status)
	httpkit.Get(r, "/quests", h.quests)

	httpkit.Post(r, "/session", h.rebuild)
	httpkit.Post(r, "/refresh", h.refresh)
}

type handlers struct {
	reader  domain.ReaderPort
	session domain.SessionPort
}

// @Summary Level curve position with score breakdown
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.ProgressionState "ok"
// @Router /profile/progression [get]
func (h *handlers) progression(r *stdhttp.Request) (any, error) {
	return h.reader.Progression(r.Context())
}

// @Summary Month activity grid
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.CalendarView "ok"
// @Router /profile/calendar [get]
func (h *handlers) calendar(r *stdhttp.Request) (any, error) {
	return h.reader.Calendar(r.Context())
}

// @Summary Activity grid for an explicit month
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body domain.CalendarQuery true "Month selector"
// @Success 200 {object} domain.CalendarView "ok"
// @Router /profile/calendar [post]
func (h *handlers) calendarAt(r *stdhttp.Request, q domain.CalendarQuery) (any, error) {
	return h.reader.CalendarAt(r.Context(), q)
}

// @Summary Current session status
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.Status "ok"
// @Router /profile/status [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	return h.reader.Status(r.Context())
}

// @Summary Completed item catalog
// @Tags Profile
// @Produce json
// @Success 200 {array} domain.Quest "ok"
// @Router /profile/quests [get]
func (h *handlers) quests(r *stdhttp.Request) (any, error) {
	return h.reader.Quests(r.Context())
}

// @Summary Rebuild the session from the baseline
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.Status "ok"
// @Router /profile/session [post]
func (h *handlers) rebuild(r *stdhttp.Request) (any, error) {
	return h.session.Rebuild(r.Context())
}

// @Summary Fire the one shot feed merge
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.Status "ok"
// @Router /profile/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	return h.session.Refresh(r.Context())
}
