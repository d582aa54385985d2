package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BackupGorm struct {
	ID        uint      `gorm:"primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;index"`
	Snapshot  datatypes.JSON
	CreatedAt time.Time
}

func (b *BackupGorm) TableName() string {
	return "progress_backups"
}

// BackupRepository appends progress snapshots as rows.
type BackupRepository struct {
	db        *gorm.DB
	profileID uuid.UUID
}

func NewBackupRepository(db *gorm.DB, profileID uuid.UUID) *BackupRepository {
	return &BackupRepository{db: db, profileID: profileID}
}

func (r *BackupRepository) Backup(ctx context.Context, snapshot []byte) error {
	return r.db.WithContext(ctx).Create(&BackupGorm{
		ProfileID: r.profileID,
		Snapshot:  datatypes.JSON(snapshot),
	}).Error
}
