package tracking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"babylog/internal/repositories"
	"babylog/internal/services"
)

var Module = fx.Provide(
	provideTrackingService, provideTrackingRepo)

func provideTrackingRepo(db *gorm.DB) repositories.TrackingRepository {
	return repositories.NewTrackingRepository(db)
}

func provideTrackingService(trackingRepo repositories.TrackingRepository, babyRepo repositories.BabyRepository) services.TrackingServiceInterface {
	return services.NewTrackingService(trackingRepo, babyRepo)
}
