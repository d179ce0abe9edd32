package repositories

import (
	"context"
	"errors"

	"babylog/internal/models/db_models"

	"gorm.io/gorm"
)

type CaregiverRepository interface {
	Insert(ctx context.Context, caregiver *db_models.BabyCaregiver) error
	FindByBabyAndUser(ctx context.Context, babyID, userID uint) (*db_models.BabyCaregiver, error)

	// DeleteByBabyAndUser removes the row matching the composite key and
	// reports gorm.ErrRecordNotFound when no such row exists.
	DeleteByBabyAndUser(ctx context.Context, babyID, userID uint) error
}

type caregiverRepository struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &caregiverRepository{db: db}
}

func (r *caregiverRepository) Insert(ctx context.Context, caregiver *db_models.BabyCaregiver) error {
	return r.db.WithContext(ctx).Create(caregiver).Error
}

func (r *caregiverRepository) FindByBabyAndUser(ctx context.Context, babyID, userID uint) (*db_models.BabyCaregiver, error) {
	var caregiver db_models.BabyCaregiver
	err := r.db.WithContext(ctx).
		First(&caregiver, "baby_id = ? AND user_id = ?", babyID, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &caregiver, nil
}

func (r *caregiverRepository) DeleteByBabyAndUser(ctx context.Context, babyID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("baby_id = ? AND user_id = ?", babyID, userID).
		Delete(&db_models.BabyCaregiver{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
