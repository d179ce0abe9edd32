package repositories

import (
	"context"
	"errors"

	"babylog/internal/models/db_models"

	"gorm.io/gorm"
)

type InviteRepository interface {
	Insert(ctx context.Context, invite *db_models.ParentInvite) error
	FindByEmailAndBaby(ctx context.Context, email string, babyID uint) (*db_models.ParentInvite, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type inviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Insert(ctx context.Context, invite *db_models.ParentInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *inviteRepository) FindByEmailAndBaby(ctx context.Context, email string, babyID uint) (*db_models.ParentInvite, error) {
	var invite db_models.ParentInvite
	err := r.db.WithContext(ctx).
		First(&invite, "email = ? AND baby_id = ?", email, babyID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invite, nil
}

func (r *inviteRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.ParentInvite{}).
		Where("id = ?", id).
		Update("status", status).Error
}
