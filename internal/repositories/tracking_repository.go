package repositories

import (
	"context"
	"errors"

	"babylog/internal/models/db_models"

	"gorm.io/gorm"
)

// TrackingRepository covers the per-kind tracking-event tables. Every list
// query is scoped to one baby and ordered by the kind's primary timestamp.
type TrackingRepository interface {
	CreateElimination(ctx context.Context, e *db_models.Elimination) error
	FindElimination(ctx context.Context, id uint) (*db_models.Elimination, error)
	SaveElimination(ctx context.Context, e *db_models.Elimination) error
	RecentEliminations(ctx context.Context, babyID uint, limit int) ([]db_models.Elimination, error)

	CreateFeeding(ctx context.Context, f *db_models.Feeding) error
	FindFeeding(ctx context.Context, id uint) (*db_models.Feeding, error)
	SaveFeeding(ctx context.Context, f *db_models.Feeding) error
	RecentFeedings(ctx context.Context, babyID uint, limit int) ([]db_models.Feeding, error)

	CreateSleep(ctx context.Context, s *db_models.Sleep) error
	FindSleep(ctx context.Context, id uint) (*db_models.Sleep, error)
	SaveSleep(ctx context.Context, s *db_models.Sleep) error
	RecentSleeps(ctx context.Context, babyID uint, limit int) ([]db_models.Sleep, error)

	CreateMilestone(ctx context.Context, m *db_models.Milestone) error
	FindMilestone(ctx context.Context, id uint) (*db_models.Milestone, error)
	SaveMilestone(ctx context.Context, m *db_models.Milestone) error
	RecentMilestones(ctx context.Context, babyID uint, limit int) ([]db_models.Milestone, error)

	CreateMeasurement(ctx context.Context, m *db_models.Measurement) error
	FindMeasurement(ctx context.Context, id uint) (*db_models.Measurement, error)
	SaveMeasurement(ctx context.Context, m *db_models.Measurement) error
	RecentMeasurements(ctx context.Context, babyID uint, limit int) ([]db_models.Measurement, error)
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) CreateElimination(ctx context.Context, e *db_models.Elimination) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *trackingRepository) FindElimination(ctx context.Context, id uint) (*db_models.Elimination, error) {
	var e db_models.Elimination
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *trackingRepository) SaveElimination(ctx context.Context, e *db_models.Elimination) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *trackingRepository) RecentEliminations(ctx context.Context, babyID uint, limit int) ([]db_models.Elimination, error) {
	var events []db_models.Elimination
	err := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *trackingRepository) CreateFeeding(ctx context.Context, f *db_models.Feeding) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *trackingRepository) FindFeeding(ctx context.Context, id uint) (*db_models.Feeding, error) {
	var f db_models.Feeding
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *trackingRepository) SaveFeeding(ctx context.Context, f *db_models.Feeding) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *trackingRepository) RecentFeedings(ctx context.Context, babyID uint, limit int) ([]db_models.Feeding, error) {
	var events []db_models.Feeding
	err := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Order("start_time DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *trackingRepository) CreateSleep(ctx context.Context, s *db_models.Sleep) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *trackingRepository) FindSleep(ctx context.Context, id uint) (*db_models.Sleep, error) {
	var s db_models.Sleep
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *trackingRepository) SaveSleep(ctx context.Context, s *db_models.Sleep) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *trackingRepository) RecentSleeps(ctx context.Context, babyID uint, limit int) ([]db_models.Sleep, error) {
	var events []db_models.Sleep
	err := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Order("start_time DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *trackingRepository) CreateMilestone(ctx context.Context, m *db_models.Milestone) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *trackingRepository) FindMilestone(ctx context.Context, id uint) (*db_models.Milestone, error) {
	var m db_models.Milestone
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *trackingRepository) SaveMilestone(ctx context.Context, m *db_models.Milestone) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *trackingRepository) RecentMilestones(ctx context.Context, babyID uint, limit int) ([]db_models.Milestone, error) {
	var events []db_models.Milestone
	err := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Order("date DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *trackingRepository) CreateMeasurement(ctx context.Context, m *db_models.Measurement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *trackingRepository) FindMeasurement(ctx context.Context, id uint) (*db_models.Measurement, error) {
	var m db_models.Measurement
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *trackingRepository) SaveMeasurement(ctx context.Context, m *db_models.Measurement) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *trackingRepository) RecentMeasurements(ctx context.Context, babyID uint, limit int) ([]db_models.Measurement, error) {
	var events []db_models.Measurement
	err := r.db.WithContext(ctx).
		Where("baby_id = ?", babyID).
		Order("date DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
