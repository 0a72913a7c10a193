package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SyncRunTrigger represents what started a sync run
type SyncRunTrigger string

const (
	// SyncRunTriggerScheduled marks runs fired by the trigger registry
	SyncRunTriggerScheduled SyncRunTrigger = "scheduled"
	// SyncRunTriggerManual marks runs fired by an operator
	SyncRunTriggerManual SyncRunTrigger = "manual"
)

// SyncRunStatus represents the status of a sync run
type SyncRunStatus string

const (
	// SyncRunStatusRunning is the status of an in-flight sync run
	SyncRunStatusRunning SyncRunStatus = "running"
	// SyncRunStatusCompleted is the status of a successfully completed sync run
	SyncRunStatusCompleted SyncRunStatus = "completed"
	// SyncRunStatusFailed is the status of a failed sync run
	SyncRunStatusFailed SyncRunStatus = "failed"
)

// SyncRun represents the sync_runs journal table, one row per ingestion or
// detection run
type SyncRun struct {
	// ID is a ULID, unique and time-sortable
	ID string `gorm:"column:id;primaryKey"`
	// Collection is the tracked collection slug the run covered
	Collection string `gorm:"column:collection;not null"`
	// Trigger records what started the run
	Trigger SyncRunTrigger `gorm:"column:trigger;not null"`
	// Status is the current status of the run
	Status SyncRunStatus `gorm:"column:status;not null"`
	// Stats holds run counters as JSON once the run completes
	Stats datatypes.JSON `gorm:"column:stats"`
	// Error holds the failure message when the run failed
	Error *string `gorm:"column:error"`
	// StartedAt is the timestamp when the run started
	StartedAt time.Time `gorm:"column:started_at;not null"`
	// CompletedAt is the timestamp when the run completed successfully
	CompletedAt *time.Time `gorm:"column:completed_at"`
	// FailedAt is the timestamp when the run failed
	FailedAt *time.Time `gorm:"column:failed_at"`
	// CreatedAt is the timestamp when the row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the SyncRun model
func (SyncRun) TableName() string {
	return "sync_runs"
}
