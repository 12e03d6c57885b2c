package handlers

import (
	"context"
	"net/http"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/services"
)

type FixtureHandler struct {
	fixtureService services.FixtureService
}

func NewFixtureHandler(fixtureService services.FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtureService: fixtureService}
}

// ListFixtures returns the tournament's fixtures visible to the caller.
// @Summary List fixtures
// @Tags fixtures
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fixtures [get]
func (h *FixtureHandler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.fixtureService.ListFixtures(r.Context(), caller, tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateCustomFixture
// @Summary Create a single custom fixture
// @Tags fixtures
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body services.CustomFixtureInput true "Fixture"
// @Success 201 {object} models.Fixture
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fixtures [post]
func (h *FixtureHandler) CreateCustomFixture(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CustomFixtureInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	fixture, err := h.fixtureService.CreateCustomFixture(r.Context(), caller, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, fixture, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateGameBreaker
// @Summary Generate a Game Breaker tie (6 legs and a decider)
// @Tags fixtures
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body services.TieInput true "Tie"
// @Success 201 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fixtures/gamebreaker [post]
func (h *FixtureHandler) GenerateGameBreaker(w http.ResponseWriter, r *http.Request) {
	h.generateTie(w, r, h.fixtureService.GenerateGameBreaker)
}

// GenerateMiniGameBreaker
// @Summary Generate a Mini Game Breaker tie (4 legs and a decider)
// @Tags fixtures
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body services.TieInput true "Tie"
// @Success 201 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fixtures/minigamebreaker [post]
func (h *FixtureHandler) GenerateMiniGameBreaker(w http.ResponseWriter, r *http.Request) {
	h.generateTie(w, r, h.fixtureService.GenerateMiniGameBreaker)
}

type tieGenerateFunc func(ctx context.Context, caller models.Caller, input services.TieInput) ([]*models.Fixture, error)

func (h *FixtureHandler) generateTie(w http.ResponseWriter, r *http.Request, generate tieGenerateFunc) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.TieInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	fixtures, err := generate(r.Context(), caller, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeGenerated(w, r, fixtures)
}

// GenerateRoundRobin
// @Summary Generate round-robin fixtures for every pool
// @Tags fixtures
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body services.RoundRobinInput true "Pools"
// @Success 201 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "partial write, message carries the count"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fixtures/roundrobin [post]
func (h *FixtureHandler) GenerateRoundRobin(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.RoundRobinInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	fixtures, err := h.fixtureService.GenerateRoundRobin(r.Context(), caller, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeGenerated(w, r, fixtures)
}

// GeneratePlayoffs
// @Summary Generate the playoff bracket skeleton
// @Tags fixtures
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param input body services.PlayoffInput false "Schedule"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/fixtures/playoffs [post]
func (h *FixtureHandler) GeneratePlayoffs(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.PlayoffInput
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}
	input.TournamentID = tournamentID

	fixtures, err := h.fixtureService.GeneratePlayoffs(r.Context(), caller, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeGenerated(w, r, fixtures)
}

func (h *FixtureHandler) writeGenerated(w http.ResponseWriter, r *http.Request, fixtures []*models.Fixture) {
	resp := jsonResponse{"fixtures": fixtures, "count": len(fixtures)}
	if err := writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetFixture
// @Summary Get one fixture
// @Tags fixtures
// @Produce json
// @Param fixtureID path string true "Fixture ID"
// @Success 200 {object} models.Fixture
// @Security BearerAuth
// @Router /fixtures/{fixtureID} [get]
func (h *FixtureHandler) GetFixture(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixture, err := h.fixtureService.GetFixture(r.Context(), caller, fixtureID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, fixture, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateFixture applies a partial update. Team admins may only send players.
// @Summary Update a fixture
// @Tags fixtures
// @Accept json
// @Produce json
// @Param fixtureID path string true "Fixture ID"
// @Param input body services.UpdateFixtureInput true "Patch"
// @Success 200 {object} models.Fixture
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /fixtures/{fixtureID} [patch]
func (h *FixtureHandler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateFixtureInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixture, err := h.fixtureService.UpdateFixture(r.Context(), caller, fixtureID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, fixture, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteFixture deletes a fixture, or its whole tie when it belongs to one.
// @Summary Delete a fixture
// @Tags fixtures
// @Produce json
// @Param fixtureID path string true "Fixture ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /fixtures/{fixtureID} [delete]
func (h *FixtureHandler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ids, err := h.fixtureService.DeleteFixture(r.Context(), caller, fixtureID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"deleted": ids}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteGroup
// @Summary Delete every fixture of a tie
// @Tags fixtures
// @Produce json
// @Param groupID path string true "Fixture group ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /fixture-groups/{groupID} [delete]
func (h *FixtureHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ids, err := h.fixtureService.DeleteGroup(r.Context(), caller, groupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"deleted": ids}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetPlayoffFixture
// @Summary Clear the teams and players of a playoff fixture
// @Tags fixtures
// @Produce json
// @Param fixtureID path string true "Fixture ID"
// @Success 200 {object} models.Fixture
// @Security BearerAuth
// @Router /fixtures/{fixtureID}/reset [post]
func (h *FixtureHandler) ResetPlayoffFixture(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixture, err := h.fixtureService.ResetPlayoffFixture(r.Context(), caller, fixtureID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, fixture, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// EligiblePlayers
// @Summary List players who may fill a slot
// @Tags fixtures
// @Produce json
// @Param fixtureID path string true "Fixture ID"
// @Param slot query string true "Slot" Enums(player1Team1, player2Team1, player1Team2, player2Team2)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /fixtures/{fixtureID}/eligible-players [get]
func (h *FixtureHandler) EligiblePlayers(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	slot := models.SlotName(r.URL.Query().Get("slot"))

	players, err := h.fixtureService.EligiblePlayers(r.Context(), caller, fixtureID, slot)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
