package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cpptutor/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressGorm struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version   int       `gorm:"not null"`

	Language int
	Level    int
	Lesson   int
	Bookmark int

	XP                    int
	TotalXP               int
	TotalLessonsCompleted int

	DailyGoal     int
	DailyProgress int
	LastGoalDate  string `gorm:"size:10"`

	WeeklyLessons  int
	WeeklyXP       int
	WeeklySessions int
	CurrentWeek    int
	WeekYear       int

	SessionsCount  int
	SessionCounter int
	LastSeenDate   string `gorm:"size:10"`

	UpdatedAt time.Time
}

func (p *ProgressGorm) TableName() string {
	return "progress_records"
}

func toGormProgress(id uuid.UUID, r *domain.ProgressRecord) *ProgressGorm {
	return &ProgressGorm{
		ProfileID:             id,
		Version:               r.Version,
		Language:              int(r.Language),
		Level:                 r.Level,
		Lesson:                r.Lesson,
		Bookmark:              r.Bookmark,
		XP:                    r.XP,
		TotalXP:               r.TotalXP,
		TotalLessonsCompleted: r.TotalLessonsCompleted,
		DailyGoal:             r.DailyGoal,
		DailyProgress:         r.DailyProgress,
		LastGoalDate:          r.LastGoalDate,
		WeeklyLessons:         r.WeeklyLessons,
		WeeklyXP:              r.WeeklyXP,
		WeeklySessions:        r.WeeklySessions,
		CurrentWeek:           r.CurrentWeek,
		WeekYear:              r.WeekYear,
		SessionsCount:         r.SessionsCount,
		SessionCounter:        r.SessionCounter,
		LastSeenDate:          r.LastSeenDate,
	}
}

func toDomainProgress(p *ProgressGorm) *domain.ProgressRecord {
	return &domain.ProgressRecord{
		Version:               p.Version,
		Language:              domain.Language(p.Language),
		Level:                 p.Level,
		Lesson:                p.Lesson,
		Bookmark:              p.Bookmark,
		XP:                    p.XP,
		TotalXP:               p.TotalXP,
		TotalLessonsCompleted: p.TotalLessonsCompleted,
		DailyGoal:             p.DailyGoal,
		DailyProgress:         p.DailyProgress,
		LastGoalDate:          p.LastGoalDate,
		WeeklyLessons:         p.WeeklyLessons,
		WeeklyXP:              p.WeeklyXP,
		WeeklySessions:        p.WeeklySessions,
		CurrentWeek:           p.CurrentWeek,
		WeekYear:              p.WeekYear,
		SessionsCount:         p.SessionsCount,
		SessionCounter:        p.SessionCounter,
		LastSeenDate:          p.LastSeenDate,
	}
}

// ProgressRepository stores one learner profile's record as a SQL row.
type ProgressRepository struct {
	db        *gorm.DB
	profileID uuid.UUID
}

func NewProgressRepository(db *gorm.DB, profileID uuid.UUID) *ProgressRepository {
	return &ProgressRepository{db: db, profileID: profileID}
}

func (r *ProgressRepository) Load(ctx context.Context) (*domain.ProgressRecord, error) {
	var row ProgressGorm
	err := r.db.WithContext(ctx).First(&row, "profile_id = ?", r.profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoProgress
		}
		return nil, err
	}
	if row.Version != domain.RecordVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", domain.ErrMalformedRecord, row.Version)
	}
	return toDomainProgress(&row), nil
}

func (r *ProgressRepository) Save(ctx context.Context, rec *domain.ProgressRecord) error {
	row := toGormProgress(r.profileID, rec)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(row).Error
}

// Snapshot is the JSON encoding of the stored row.
func (r *ProgressRepository) Snapshot(ctx context.Context) ([]byte, error) {
	rec, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

func (r *ProgressRepository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ?", r.profileID).
		Delete(&ProgressGorm{}).Error
}
