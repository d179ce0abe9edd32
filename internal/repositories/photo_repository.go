package repositories

import (
	"context"
	"errors"

	"babylog/internal/models/db_models"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	// CreateForBaby inserts the photo, its baby join row and, when the baby
	// has a default album, the album join row in one transaction.
	CreateForBaby(ctx context.Context, photo *db_models.Photo, babyID uint) error

	FindByID(ctx context.Context, id uint) (*db_models.Photo, error)
	Save(ctx context.Context, photo *db_models.Photo) error
	DeleteByID(ctx context.Context, id uint) error

	// BabyIDForPhoto resolves the owning baby through the join table.
	BabyIDForPhoto(ctx context.Context, photoID uint) (uint, error)
	RecentByBaby(ctx context.Context, babyID uint, limit int) ([]db_models.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) CreateForBaby(ctx context.Context, photo *db_models.Photo, babyID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(photo).Error; err != nil {
			return err
		}

		join := db_models.BabyPhoto{BabyID: babyID, PhotoID: photo.ID}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}

		var album db_models.Album
		err := tx.Where("baby_id = ?", babyID).Order("id").First(&album).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		albumJoin := db_models.AlbumPhoto{AlbumID: album.ID, PhotoID: photo.ID}
		return tx.Create(&albumJoin).Error
	})
}

func (r *photoRepository) FindByID(ctx context.Context, id uint) (*db_models.Photo, error) {
	var photo db_models.Photo
	err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &photo, nil
}

func (r *photoRepository) Save(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Save(photo).Error
}

func (r *photoRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&db_models.Photo{}, "id = ?", id).Error
}

func (r *photoRepository) BabyIDForPhoto(ctx context.Context, photoID uint) (uint, error) {
	var join db_models.BabyPhoto
	err := r.db.WithContext(ctx).First(&join, "photo_id = ?", photoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return join.BabyID, nil
}

func (r *photoRepository) RecentByBaby(ctx context.Context, babyID uint, limit int) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Joins("JOIN baby_photos ON baby_photos.photo_id = photos.id").
		Where("baby_photos.baby_id = ?", babyID).
		Order("photos.timestamp DESC").
		Limit(limit).
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
