package baby_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"babylog/internal/repositories"
	"babylog/internal/services"
)

var Module = fx.Provide(
	provideBabyService, provideBabyRepo, provideInviteRepo)

func provideBabyRepo(db *gorm.DB) repositories.BabyRepository {
	return repositories.NewBabyRepository(db)
}

func provideInviteRepo(db *gorm.DB) repositories.InviteRepository {
	return repositories.NewInviteRepository(db)
}

func provideBabyService(babyRepo repositories.BabyRepository, inviteRepo repositories.InviteRepository, mailService services.IMailService) services.BabyServiceInterface {
	return services.NewBabyService(babyRepo, inviteRepo, mailService)
}
