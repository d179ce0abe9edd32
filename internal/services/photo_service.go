package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"babylog/internal/infra"
	"babylog/internal/models/db_models"
	"babylog/internal/models/request_models"
	"babylog/internal/models/response_models"
	"babylog/internal/repositories"
	"babylog/pkg/utils"
)

const (
	maxPhotoSize     = 5 * 1024 * 1024
	presignLifetime  = time.Hour
	uploadTimeout    = 30 * time.Second
	recentPhotoLimit = 20
)

// UploadedPhoto is the file as received from the multipart form.
type UploadedPhoto struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type PhotoServiceInterface interface {
	// Upload runs the full flow: validate, presign, PUT the bytes, record.
	Upload(ctx context.Context, userID, babyID uint, file UploadedPhoto, caption *string) (*db_models.Photo, error)

	TrackPhoto(ctx context.Context, userID, babyID uint, key string, caption *string, timestamp time.Time) (*db_models.Photo, error)
	EditPhoto(ctx context.Context, userID, photoID uint, request request_models.EditPhotoRequest) error
	DeletePhoto(ctx context.Context, userID, photoID uint) error
	RecentPhotos(ctx context.Context, userID, babyID uint, limit int) ([]response_models.PhotoResponse, error)
}

type PhotoService struct {
	photoRepo  repositories.PhotoRepository
	babyRepo   repositories.BabyRepository
	store      infra.ObjectStore
	httpClient *http.Client
}

func NewPhotoService(photoRepo repositories.PhotoRepository, babyRepo repositories.BabyRepository, store infra.ObjectStore) PhotoServiceInterface {
	return &PhotoService{
		photoRepo:  photoRepo,
		babyRepo:   babyRepo,
		store:      store,
		httpClient: &http.Client{Timeout: uploadTimeout},
	}
}

func (p *PhotoService) Upload(ctx context.Context, userID, babyID uint, file UploadedPhoto, caption *string) (*db_models.Photo, error) {
	if _, err := requireBabyAccess(ctx, p.babyRepo, userID, babyID); err != nil {
		return nil, err
	}

	if file.Content == nil || file.Size == 0 {
		return nil, utils.ErrNoFileSelected
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return nil, utils.ErrInvalidFileType
	}
	if file.Size > maxPhotoSize {
		return nil, utils.ErrFileTooLarge
	}

	key := utils.UniqueObjectKey(file.Filename)
	uploadURL, err := p.store.PresignUpload(ctx, key, file.ContentType, presignLifetime)
	if err != nil {
		log.Printf("Error presigning upload for %s: %v", key, err)
		return nil, utils.ErrStorageError
	}

	if err := p.putObject(ctx, uploadURL, file); err != nil {
		log.Printf("Error uploading %s: %v", key, err)
		return nil, utils.ErrStorageError
	}

	return p.TrackPhoto(ctx, userID, babyID, key, caption, time.Now())
}

func (p *PhotoService) putObject(ctx context.Context, uploadURL string, file UploadedPhoto) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file.Content)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", file.ContentType)
	req.ContentLength = file.Size

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload returned status %s", resp.Status)
	}
	return nil
}

func (p *PhotoService) TrackPhoto(ctx context.Context, userID, babyID uint, key string, caption *string, timestamp time.Time) (*db_models.Photo, error) {
	if _, err := requireBabyAccess(ctx, p.babyRepo, userID, babyID); err != nil {
		return nil, err
	}

	photo := &db_models.Photo{
		URL:       key,
		Caption:   caption,
		Timestamp: timestamp,
	}
	if err := p.photoRepo.CreateForBaby(ctx, photo, babyID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return photo, nil
}

func (p *PhotoService) EditPhoto(ctx context.Context, userID, photoID uint, request request_models.EditPhotoRequest) error {
	photo, err := p.authorizedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if request.Caption != nil {
		photo.Caption = request.Caption
	}
	if request.Timestamp != nil {
		timestamp, err := utils.ParseTimestamp(*request.Timestamp)
		if err != nil {
			return utils.ErrInvalidInput
		}
		photo.Timestamp = timestamp
	}

	if err := p.photoRepo.Save(ctx, photo); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// DeletePhoto removes the stored object before the database row. A storage
// failure aborts the call so a row never outlives its file silently; the
// object may be retried later because the row still references it.
func (p *PhotoService) DeletePhoto(ctx context.Context, userID, photoID uint) error {
	photo, err := p.authorizedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if err := p.store.Delete(ctx, photo.URL); err != nil {
		log.Printf("Error deleting object %s: %v", photo.URL, err)
		return utils.ErrStorageError
	}

	if err := p.photoRepo.DeleteByID(ctx, photoID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PhotoService) RecentPhotos(ctx context.Context, userID, babyID uint, limit int) ([]response_models.PhotoResponse, error) {
	if _, err := requireBabyAccess(ctx, p.babyRepo, userID, babyID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = recentPhotoLimit
	}

	photos, err := p.photoRepo.RecentByBaby(ctx, babyID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		signedURL, err := p.store.PresignDownload(ctx, photo.URL, presignLifetime)
		if err != nil {
			// Dropped rather than surfaced as a broken image.
			log.Printf("Error signing photo %d (%s): %v", photo.ID, photo.URL, err)
			continue
		}
		out = append(out, response_models.PhotoResponse{
			ID:        photo.ID,
			URL:       signedURL,
			Caption:   photo.Caption,
			Timestamp: photo.Timestamp,
		})
	}
	return out, nil
}

func (p *PhotoService) authorizedPhoto(ctx context.Context, userID, photoID uint) (*db_models.Photo, error) {
	photo, err := p.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if photo == nil {
		return nil, utils.ErrPhotoNotFound
	}

	babyID, err := p.photoRepo.BabyIDForPhoto(ctx, photoID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if babyID == 0 {
		return nil, utils.ErrPhotoNotFound
	}
	if _, err := requireBabyAccess(ctx, p.babyRepo, userID, babyID); err != nil {
		return nil, err
	}
	return photo, nil
}
