package repositories

import (
	"context"
	"errors"

	"babylog/internal/models/db_models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BabyRepository interface {
	// CreateWithOwner inserts the baby, the owner's PARENT caregiver row
	// and the baby's default album in one transaction.
	CreateWithOwner(ctx context.Context, baby *db_models.Baby) error

	FindByID(ctx context.Context, id uint) (*db_models.Baby, error)
	FindByUser(ctx context.Context, userID uint) ([]db_models.Baby, error)
	UpdateOwner(ctx context.Context, babyID, newOwnerID uint) error
}

type babyRepository struct {
	db *gorm.DB
}

func NewBabyRepository(db *gorm.DB) BabyRepository {
	return &babyRepository{db: db}
}

func (r *babyRepository) CreateWithOwner(ctx context.Context, baby *db_models.Baby) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(baby).Error; err != nil {
			return err
		}

		caregiver := db_models.BabyCaregiver{
			BabyID:       baby.ID,
			UserID:       baby.OwnerID,
			Relationship: "PARENT",
			Permissions:  pq.StringArray{"view", "log"},
		}
		if err := tx.Create(&caregiver).Error; err != nil {
			return err
		}

		album := db_models.Album{
			BabyID: baby.ID,
			Title:  baby.FirstName,
		}
		return tx.Create(&album).Error
	})
}

func (r *babyRepository) FindByID(ctx context.Context, id uint) (*db_models.Baby, error) {
	var baby db_models.Baby
	err := r.db.WithContext(ctx).
		Preload("Caregivers").
		Preload("Caregivers.User").
		First(&baby, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &baby, nil
}

func (r *babyRepository) FindByUser(ctx context.Context, userID uint) ([]db_models.Baby, error) {
	var babies []db_models.Baby
	err := r.db.WithContext(ctx).
		Where("owner_id = ? OR id IN (?)",
			userID,
			r.db.Model(&db_models.BabyCaregiver{}).Select("baby_id").Where("user_id = ?", userID),
		).
		Order("date_of_birth DESC").
		Find(&babies).Error
	if err != nil {
		return nil, err
	}
	return babies, nil
}

func (r *babyRepository) UpdateOwner(ctx context.Context, babyID, newOwnerID uint) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Baby{}).
		Where("id = ?", babyID).
		Update("owner_id", newOwnerID).Error
}
