package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/schedule"
	"github.com/Dosada05/tournament-fixtures/services"
)

type ScheduleHandler struct {
	scheduleService   services.ScheduleService
	preferenceService services.PreferenceService
	exportService     services.ExportService
}

func NewScheduleHandler(scheduleService services.ScheduleService, preferenceService services.PreferenceService, exportService services.ExportService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService:   scheduleService,
		preferenceService: preferenceService,
		exportService:     exportService,
	}
}

// GetSchedule
// @Summary Calendar, tie groups, flat list and playoff bracket of a tournament
// @Tags schedule
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param team query string false "Team ID filter"
// @Param venue query string false "Venue ID filter"
// @Param q query string false "Search over team, player and venue names"
// @Param activeOnly query bool false "Only days with fixtures"
// @Success 200 {object} services.ScheduleView
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/schedule [get]
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	q := r.URL.Query()
	query := services.ScheduleQuery{
		Filter: schedule.Filter{
			TeamID:  q.Get("team"),
			VenueID: q.Get("venue"),
			Search:  q.Get("q"),
		},
	}
	if raw := q.Get("activeOnly"); raw != "" {
		query.ActiveOnly, err = strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("activeOnly must be true or false"))
			return
		}
	}

	view, err := h.scheduleService.BuildSchedule(r.Context(), caller, tournamentID, query)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStyle
// @Summary Remembered fixture style of a tournament
// @Tags schedule
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} models.StylePreference
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/style [get]
func (h *ScheduleHandler) GetStyle(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pref, err := h.preferenceService.GetStyle(r.Context(), caller, tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, pref, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type setStyleInput struct {
	Style models.FixtureStyle `json:"style"`
}

// SetStyle
// @Summary Remember the fixture style of a tournament
// @Tags schedule
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body setStyleInput true "Style"
// @Success 200 {object} models.StylePreference
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/style [put]
func (h *ScheduleHandler) SetStyle(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input setStyleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pref, err := h.preferenceService.SetStyle(r.Context(), caller, tournamentID, input.Style)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, pref, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PublishSchedule
// @Summary Upload a public JSON snapshot of the schedule
// @Tags schedule
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} services.PublishedSchedule
// @Failure 503 {object} map[string]string "export not configured"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/export [post]
func (h *ScheduleHandler) PublishSchedule(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	published, err := h.exportService.PublishSchedule(r.Context(), caller, tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, published, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UnpublishSchedule
// @Summary Remove the public schedule snapshot
// @Tags schedule
// @Param tournamentID path string true "Tournament ID"
// @Success 204
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/export [delete]
func (h *ScheduleHandler) UnpublishSchedule(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.exportService.UnpublishSchedule(r.Context(), caller, tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
