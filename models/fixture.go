package models

import "time"

// DateLayout is the day key format used for bucketing and storage.
const DateLayout = "2006-01-02"

// FixtureType decides which validation rules apply and whether the fixture takes part
// in tie grouping.
type FixtureType string

const (
	FixtureTypeCustom           FixtureType = "custom"
	FixtureTypeDreamBreaker     FixtureType = "dreambreaker"
	FixtureTypeMiniDreamBreaker FixtureType = "minidreambreaker"
	FixtureTypeRoundRobin       FixtureType = "roundrobin"
	FixtureTypePlayoff          FixtureType = "playoff"
)

type PlayoffStage string

const (
	StageQuarterfinal PlayoffStage = "quarterfinal"
	StageSemifinal    PlayoffStage = "semifinal"
	StageThirdPlace   PlayoffStage = "thirdplace"
	StageFinal        PlayoffStage = "final"
)

// Order is the position of the stage in the bracket, earliest first.
func (s PlayoffStage) Order() int {
	switch s {
	case StageQuarterfinal:
		return 1
	case StageSemifinal:
		return 2
	case StageThirdPlace:
		return 3
	case StageFinal:
		return 4
	default:
		return 99
	}
}

type FixtureStatus string

const (
	FixtureStatusScheduled FixtureStatus = "scheduled"
)

// MinDeciderRoster is how many players each side must name for the tie-decider.
const MinDeciderRoster = 6

type PlayerSlot struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

func (p PlayerSlot) IsEmpty() bool {
	return p.ID == ""
}

// Fixture is one scheduled match.
type Fixture struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`

	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Pool      *string   `json:"pool"`
	Court     *string   `json:"court"`
	VenueID   string    `json:"venueId,omitempty"`
	VenueName string    `json:"venueName,omitempty"`

	MatchType      Category `json:"matchType"`
	MatchTypeLabel string   `json:"matchTypeLabel"`

	Team1     TeamRef `json:"team1"`
	Team2     TeamRef `json:"team2"`
	Team1Name string  `json:"team1Name"`
	Team2Name string  `json:"team2Name"`

	Player1Team1 PlayerSlot `json:"player1Team1"`
	Player2Team1 PlayerSlot `json:"player2Team1"`
	Player1Team2 PlayerSlot `json:"player1Team2"`
	Player2Team2 PlayerSlot `json:"player2Team2"`

	Team1Players []string `json:"team1Players"`
	Team2Players []string `json:"team2Players"`

	FixtureGroupID string      `json:"fixtureGroupId,omitempty"`
	MatchNumber    int         `json:"matchNumber,omitempty"`
	FixtureType    FixtureType `json:"fixtureType"`

	PlayoffStage  PlayoffStage `json:"playoffStage,omitempty"`
	PlayoffNumber int          `json:"playoffNumber,omitempty"`
	PlayoffName   string       `json:"playoffName,omitempty"`

	YoutubeLink string        `json:"youtubeLink,omitempty"`
	Status      FixtureStatus `json:"status"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateKey is the day bucket of the fixture, or "" when it has no date.
func (f *Fixture) DateKey() string {
	if f.Date.IsZero() {
		return ""
	}
	return f.Date.Format(DateLayout)
}

func (f *Fixture) IsDecider() bool {
	return f.MatchType == CategoryDreamBreaker
}

// IsTieMember reports whether the fixture takes part in tie grouping. Round-robin
// fixtures never do, even if a group id was stored on them.
func (f *Fixture) IsTieMember() bool {
	return f.FixtureGroupID != "" && f.FixtureType != FixtureTypeRoundRobin
}

func (f *Fixture) Involves(teamID string) bool {
	return f.Team1.Is(teamID) || f.Team2.Is(teamID)
}

// Slots maps every named player slot to its field.
func (f *Fixture) Slots() map[SlotName]*PlayerSlot {
	return map[SlotName]*PlayerSlot{
		SlotPlayer1Team1: &f.Player1Team1,
		SlotPlayer2Team1: &f.Player2Team1,
		SlotPlayer1Team2: &f.Player1Team2,
		SlotPlayer2Team2: &f.Player2Team2,
	}
}

func (f *Fixture) Slot(name SlotName) *PlayerSlot {
	return f.Slots()[name]
}

func (f *Fixture) ClearPlayers() {
	f.Player1Team1 = PlayerSlot{}
	f.Player2Team1 = PlayerSlot{}
	f.Player1Team2 = PlayerSlot{}
	f.Player2Team2 = PlayerSlot{}
}

// Clone returns a deep copy.
func (f *Fixture) Clone() *Fixture {
	c := *f
	if f.Pool != nil {
		pool := *f.Pool
		c.Pool = &pool
	}
	if f.Court != nil {
		court := *f.Court
		c.Court = &court
	}
	c.Team1Players = cloneStrings(f.Team1Players)
	c.Team2Players = cloneStrings(f.Team2Players)
	return &c
}

// cloneStrings keeps an empty roster empty rather than nil.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

// SlotName identifies one of the four named player slots.
type SlotName string

const (
	SlotPlayer1Team1 SlotName = "player1Team1"
	SlotPlayer2Team1 SlotName = "player2Team1"
	SlotPlayer1Team2 SlotName = "player1Team2"
	SlotPlayer2Team2 SlotName = "player2Team2"
)

var AllSlots = []SlotName{SlotPlayer1Team1, SlotPlayer2Team1, SlotPlayer1Team2, SlotPlayer2Team2}

func (s SlotName) IsValid() bool {
	switch s {
	case SlotPlayer1Team1, SlotPlayer2Team1, SlotPlayer1Team2, SlotPlayer2Team2:
		return true
	}
	return false
}

// Side is 1 for team1 slots and 2 for team2 slots.
func (s SlotName) Side() int {
	if s == SlotPlayer1Team2 || s == SlotPlayer2Team2 {
		return 2
	}
	return 1
}

// IsSecond reports whether the slot is the second player of its side.
func (s SlotName) IsSecond() bool {
	return s == SlotPlayer2Team1 || s == SlotPlayer2Team2
}

// Partner is the other slot on the same side.
func (s SlotName) Partner() SlotName {
	switch s {
	case SlotPlayer1Team1:
		return SlotPlayer2Team1
	case SlotPlayer2Team1:
		return SlotPlayer1Team1
	case SlotPlayer1Team2:
		return SlotPlayer2Team2
	default:
		return SlotPlayer1Team2
	}
}

// ParseDay reads a YYYY-MM-DD day as UTC midnight.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DayOf drops the clock part of t and keeps its calendar day.
func DayOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
