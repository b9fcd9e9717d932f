// Package sqlite provides a SQLite-backed read-only activity catalog.
// The schema and seed rows ship as embedded migrations, so an empty
// database file becomes a working catalog on open.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/everyday.space/internal/catalog"
	"github.com/louisbranch/everyday.space/internal/catalog/filter"
	"github.com/louisbranch/everyday.space/internal/catalog/sqlite/migrations"
	"github.com/louisbranch/everyday.space/internal/platform/config"
	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
	"github.com/louisbranch/everyday.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/everyday.space/internal/sim"
	_ "modernc.org/sqlite"
)

// Config locates the catalog database.
type Config struct {
	Path string `env:"EVERYDAY_SPACE_CATALOG_DB" envDefault:"catalog.db"`
}

// Store reads activities from SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// OpenFromEnv opens the store at the path configured in the environment.
func OpenFromEnv(ctx context.Context) (*Store, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return Open(ctx, cfg.Path)
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

const activityColumns = `id, name, category, location, time_cost, energy_cost, money_cost, difficulty, relevant_stats, profile`

// Activity returns one activity by id.
func (s *Store) Activity(ctx context.Context, id string) (catalog.Activity, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Activity{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)

	activity, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Activity{}, apperrors.WithMetadata(apperrors.CodeCatalogActivityNotFound,
			"activity not found", map[string]string{"activity_id": id})
	}
	if err != nil {
		return catalog.Activity{}, fmt.Errorf("load activity %s: %w", id, err)
	}
	return activity, nil
}

// ListActivities returns every activity ordered by id.
func (s *Store) ListActivities(ctx context.Context) ([]catalog.Activity, error) {
	return s.ListFiltered(ctx, "")
}

// ListFiltered returns the activities matching an AIP-160 filter
// expression over the declared catalog fields. An empty filter matches
// everything.
func (s *Store) ListFiltered(ctx context.Context, filterStr string) ([]catalog.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsed, err := filter.Parse(filterStr, catalog.FilterFields())
	if err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []catalog.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		match, err := filter.Evaluate(parsed, activity.FilterValue)
		if err != nil {
			return nil, err
		}
		if match {
			activities = append(activities, activity)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (catalog.Activity, error) {
	var (
		activity    catalog.Activity
		category    string
		statsJSON   string
		profileJSON string
	)
	err := row.Scan(
		&activity.ID,
		&activity.Name,
		&category,
		&activity.Location,
		&activity.TimeCost,
		&activity.EnergyCost,
		&activity.MoneyCost,
		&activity.Difficulty,
		&statsJSON,
		&profileJSON,
	)
	if err != nil {
		return catalog.Activity{}, err
	}
	activity.Category = catalog.Category(category)

	if err := json.Unmarshal([]byte(statsJSON), &activity.RelevantStats); err != nil {
		return catalog.Activity{}, fmt.Errorf("decode relevant stats: %w", err)
	}
	profile, err := decodeProfile(profileJSON)
	if err != nil {
		return catalog.Activity{}, err
	}
	activity.Profile = profile

	if err := activity.Validate(); err != nil {
		return catalog.Activity{}, err
	}
	return activity, nil
}

// profileRecord is the stored JSON shape of an effect profile.
type profileRecord struct {
	MainStats      []sim.StatName  `json:"main_stats,omitempty"`
	MainGain       int             `json:"main_gain,omitempty"`
	MoneyGain      int             `json:"money_gain,omitempty"`
	SecondaryStats []sim.StatName  `json:"secondary_stats,omitempty"`
	SecondaryGain  int             `json:"secondary_gain,omitempty"`
	Negative       *negativeRecord `json:"negative,omitempty"`
}

type negativeRecord struct {
	PenaltyStats  []sim.StatName `json:"penalty_stats,omitempty"`
	PenaltyAmount int            `json:"penalty_amount,omitempty"`
	EnergyCost    int            `json:"energy_cost,omitempty"`
	MoneyCost     int            `json:"money_cost,omitempty"`
	TimeCost      int            `json:"time_cost,omitempty"`
}

func decodeProfile(raw string) (sim.EffectProfile, error) {
	var record profileRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return sim.EffectProfile{}, fmt.Errorf("decode effect profile: %w", err)
	}

	profile := sim.EffectProfile{
		MainStats:      record.MainStats,
		MainGain:       record.MainGain,
		MoneyGain:      record.MoneyGain,
		SecondaryStats: record.SecondaryStats,
		SecondaryGain:  record.SecondaryGain,
	}
	if record.Negative != nil {
		profile.Negative = &sim.NegativeEffects{
			PenaltyStats:  record.Negative.PenaltyStats,
			PenaltyAmount: record.Negative.PenaltyAmount,
			EnergyCost:    record.Negative.EnergyCost,
			MoneyCost:     record.Negative.MoneyCost,
			TimeCost:      record.Negative.TimeCost,
		}
	}
	return profile, nil
}
