// Command fixturectl runs fixture maintenance tasks against the database
// without going through the HTTP API.
//
// Usage:
//
//	fixturectl migrate
//	fixturectl generate playoffs --tournament t1 --date 2026-03-16 --time 10:00
//	fixturectl calendar --tournament t1 --active-only
//	fixturectl export --tournament t1
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-fixtures/config"
	"github.com/Dosada05/tournament-fixtures/db"
	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/repositories"
	"github.com/Dosada05/tournament-fixtures/services"
	"github.com/Dosada05/tournament-fixtures/storage"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// operator is the identity every command acts as.
var operator = models.Caller{UID: "fixturectl", Email: "fixturectl@localhost", Role: models.RoleSuperAdmin}

func main() {
	root := &cobra.Command{
		Use:          "fixturectl",
		Short:        "Tournament fixtures maintenance CLI",
		SilenceUsage: true,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(generateCmd())
	root.AddCommand(calendarCmd())
	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles what the commands need once the database is reachable.
type app struct {
	cfg       *config.Config
	db        *sql.DB
	fixtures  services.FixtureService
	schedules services.ScheduleService
	store     storage.ObjectStore
}

func run(fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close()

	tournamentRepo := repositories.NewPostgresTournamentRepository(conn)
	fixtures := services.NewFixtureService(
		repositories.NewPostgresFixtureRepository(conn),
		tournamentRepo,
		repositories.NewPostgresRosterRepository(conn),
		repositories.NewPostgresVenueRepository(conn),
		nil,
		logger,
		cfg.Location,
	)

	var store storage.ObjectStore
	if cfg.R2.Enabled() {
		if store, err = storage.NewR2Store(ctx, cfg.R2); err != nil {
			return fmt.Errorf("init object store: %w", err)
		}
	}

	return fn(ctx, &app{
		cfg:       cfg,
		db:        conn,
		fixtures:  fixtures,
		schedules: services.NewScheduleService(tournamentRepo, fixtures),
		store:     store,
	})
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *app) error {
				if err := db.Migrate(ctx, a.db); err != nil {
					return err
				}
				logger.Info("schema applied")
				return nil
			})
		},
	}
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate fixtures",
	}
	cmd.AddCommand(generatePlayoffsCmd())
	return cmd
}

func generatePlayoffsCmd() *cobra.Command {
	var in services.PlayoffInput
	cmd := &cobra.Command{
		Use:   "playoffs",
		Short: "Create the playoff bracket skeleton for a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *app) error {
				created, err := a.fixtures.GeneratePlayoffs(ctx, operator, in)
				if err != nil {
					return err
				}
				logger.Info("playoff fixtures created", "tournament", in.TournamentID, "count", len(created))
				for _, f := range created {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", f.ID, f.PlayoffName, f.MatchTypeLabel)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.TournamentID, "tournament", "", "Tournament ID")
	cmd.Flags().StringVar(&in.Date, "date", "", "Placeholder date (defaults to the tournament start)")
	cmd.Flags().StringVar(&in.Time, "time", "", "Placeholder time, HH:MM")
	cmd.Flags().StringVar(&in.VenueID, "venue", "", "Venue ID")
	_ = cmd.MarkFlagRequired("tournament")
	return cmd
}

func calendarCmd() *cobra.Command {
	var (
		tournamentID string
		activeOnly   bool
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the tournament calendar with the fixtures of each day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *app) error {
				view, err := a.schedules.BuildSchedule(ctx, operator, tournamentID, services.ScheduleQuery{ActiveOnly: activeOnly})
				if err != nil {
					return err
				}
				board, err := services.NewBoard(ctx, a.fixtures, operator, tournamentID)
				if err != nil {
					return err
				}
				printCalendar(cmd.OutOrStdout(), view, board)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tournamentID, "tournament", "", "Tournament ID")
	cmd.Flags().BoolVar(&activeOnly, "active-only", false, "Skip days without fixtures")
	_ = cmd.MarkFlagRequired("tournament")
	return cmd
}

func printCalendar(w io.Writer, view *services.ScheduleView, board *services.Board) {
	fmt.Fprintf(w, "%s\n", view.Tournament.Name)
	for _, day := range view.Days {
		fmt.Fprintf(w, "%s  %d fixture(s)\n", day.Date.Format("Mon 02 Jan 2006"), day.FixtureCount)
		for _, f := range board.Day(day.Key) {
			fmt.Fprintf(w, "  %s  %-22s %s vs %s\n", f.Time, f.MatchTypeLabel, teamLabel(f.Team1Name, f.Team1), teamLabel(f.Team2Name, f.Team2))
		}
	}
}

func teamLabel(name string, ref models.TeamRef) string {
	if name != "" {
		return name
	}
	return ref.String()
}

func exportCmd() *cobra.Command {
	var tournamentID string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Publish the schedule snapshot to object storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *app) error {
				export := services.NewExportService(a.schedules, a.store, logger)
				published, err := export.PublishSchedule(ctx, operator, tournamentID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), published.URL)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tournamentID, "tournament", "", "Tournament ID")
	_ = cmd.MarkFlagRequired("tournament")
	return cmd
}
