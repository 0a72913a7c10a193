package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/alexpan006/blockdash-api/internal/store/schema"
)

// RunJournal defines the sync-run journal operations. Journal failures are
// bookkeeping failures: callers log them and never fail the run itself.
//
//go:generate mockgen -source=pg.go -destination=../mocks/run_journal.go -package=mocks -mock_names=RunJournal=MockRunJournal
type RunJournal interface {
	// CreateSyncRun opens a journal row for a starting run
	CreateSyncRun(ctx context.Context, run *schema.SyncRun) error
	// CompleteSyncRun marks a run completed and attaches its counters
	CompleteSyncRun(ctx context.Context, id string, stats datatypes.JSON) error
	// FailSyncRun marks a run failed with an error message
	FailSyncRun(ctx context.Context, id string, errMsg string) error
	// ListSyncRuns pages through runs, newest first, optionally filtered by
	// collection. Returns the page and the total matching count.
	ListSyncRuns(ctx context.Context, collection string, limit, offset int) ([]schema.SyncRun, int64, error)
}

type pgJournal struct {
	db *gorm.DB
}

// NewPGJournal creates a new PostgreSQL run journal instance
func NewPGJournal(db *gorm.DB) RunJournal {
	return &pgJournal{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Settings of 0 fall back to defaults: 20 open, 5 idle,
// 5 minute lifetime, 10 minute idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateSyncRun opens a journal row for a starting run
func (j *pgJournal) CreateSyncRun(ctx context.Context, run *schema.SyncRun) error {
	if run.ID == "" {
		return errors.New("sync run requires an id")
	}
	if run.Status == "" {
		run.Status = schema.SyncRunStatusRunning
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	if err := j.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create sync run: %w", err)
	}
	return nil
}

// CompleteSyncRun marks a run completed and attaches its counters
func (j *pgJournal) CompleteSyncRun(ctx context.Context, id string, stats datatypes.JSON) error {
	now := time.Now().UTC()
	result := j.db.WithContext(ctx).
		Model(&schema.SyncRun{}).
		Where("id = ? AND status = ?", id, schema.SyncRunStatusRunning).
		Updates(map[string]interface{}{
			"status":       schema.SyncRunStatusCompleted,
			"stats":        stats,
			"completed_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete sync run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sync run %s not found or not running", id)
	}
	return nil
}

// FailSyncRun marks a run failed with an error message
func (j *pgJournal) FailSyncRun(ctx context.Context, id string, errMsg string) error {
	now := time.Now().UTC()
	result := j.db.WithContext(ctx).
		Model(&schema.SyncRun{}).
		Where("id = ? AND status = ?", id, schema.SyncRunStatusRunning).
		Updates(map[string]interface{}{
			"status":     schema.SyncRunStatusFailed,
			"error":      errMsg,
			"failed_at":  now,
			"updated_at": now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark sync run failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sync run %s not found or not running", id)
	}
	return nil
}

// ListSyncRuns pages through runs, newest first
func (j *pgJournal) ListSyncRuns(ctx context.Context, collection string, limit, offset int) ([]schema.SyncRun, int64, error) {
	query := j.db.WithContext(ctx).Model(&schema.SyncRun{})
	if collection != "" {
		query = query.Where("collection = ?", collection)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sync runs: %w", err)
	}

	var runs []schema.SyncRun
	if err := query.
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list sync runs: %w", err)
	}

	return runs, total, nil
}
