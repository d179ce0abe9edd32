package caregiver_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"babylog/internal/repositories"
	"babylog/internal/services"
)

var Module = fx.Provide(
	provideCaregiverService, provideCaregiverRepo)

func provideCaregiverRepo(db *gorm.DB) repositories.CaregiverRepository {
	return repositories.NewCaregiverRepository(db)
}

func provideCaregiverService(
	babyRepo repositories.BabyRepository,
	caregiverRepo repositories.CaregiverRepository,
	inviteRepo repositories.InviteRepository,
	userRepo repositories.UserRepository,
) services.CaregiverServiceInterface {
	return services.NewCaregiverService(babyRepo, caregiverRepo, inviteRepo, userRepo)
}
