package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/storage"
)

const scheduleContentType = "application/json"

// PublishedSchedule describes an uploaded snapshot.
type PublishedSchedule struct {
	TournamentID string    `json:"tournamentId"`
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Fixtures     int       `json:"fixtures"`
	PublishedAt  time.Time `json:"publishedAt"`
}

type ExportService interface {
	PublishSchedule(ctx context.Context, caller models.Caller, tournamentID string) (*PublishedSchedule, error)
	UnpublishSchedule(ctx context.Context, caller models.Caller, tournamentID string) error
}

type exportService struct {
	schedules ScheduleService
	store     storage.ObjectStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewExportService returns a service that reports ErrExportDisabled when store is nil.
func NewExportService(schedules ScheduleService, store storage.ObjectStore, logger *slog.Logger) ExportService {
	return &exportService{schedules: schedules, store: store, logger: logger, now: time.Now}
}

func ScheduleKey(tournamentID string) string {
	return "schedules/" + tournamentID + ".json"
}

type scheduleSnapshot struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Schedule    *ScheduleView `json:"schedule"`
}

func (s *exportService) PublishSchedule(ctx context.Context, caller models.Caller, tournamentID string) (*PublishedSchedule, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrExportDisabled
	}

	view, err := s.schedules.BuildSchedule(ctx, caller, tournamentID, ScheduleQuery{})
	if err != nil {
		return nil, err
	}
	publishedAt := s.now().UTC()
	body, err := json.Marshal(scheduleSnapshot{GeneratedAt: publishedAt, Schedule: view})
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule snapshot: %w", err)
	}

	key := ScheduleKey(tournamentID)
	result, err := s.store.Put(ctx, key, scheduleContentType, bytes.NewReader(body))
	if err != nil {
		s.logger.ErrorContext(ctx, "schedule upload failed", slog.String("tournament_id", tournamentID), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "schedule published",
		slog.String("tournament_id", tournamentID), slog.String("key", key), slog.Int("bytes", len(body)))
	return &PublishedSchedule{
		TournamentID: tournamentID,
		Key:          result.Key,
		URL:          result.Location,
		Fixtures:     len(view.Fixtures) + len(view.Playoffs) + countGroupMembers(view),
		PublishedAt:  publishedAt,
	}, nil
}

func (s *exportService) UnpublishSchedule(ctx context.Context, caller models.Caller, tournamentID string) error {
	if err := requirePrivileged(caller); err != nil {
		return err
	}
	if s.store == nil {
		return ErrExportDisabled
	}
	if err := s.store.Delete(ctx, ScheduleKey(tournamentID)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.logger.InfoContext(ctx, "schedule unpublished", slog.String("tournament_id", tournamentID))
	return nil
}

func countGroupMembers(view *ScheduleView) int {
	n := 0
	for _, g := range view.Groups {
		n += len(g.Fixtures)
	}
	return n
}
