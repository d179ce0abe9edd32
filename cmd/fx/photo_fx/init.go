package photo_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"babylog/internal/infra"
	"babylog/internal/repositories"
	"babylog/internal/services"
)

var Module = fx.Provide(
	providePhotoService, providePhotoRepo)

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepository {
	return repositories.NewPhotoRepository(db)
}

func providePhotoService(photoRepo repositories.PhotoRepository, babyRepo repositories.BabyRepository, store infra.ObjectStore) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, babyRepo, store)
}
