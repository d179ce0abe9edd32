package controllers_fx

import (
	"go.uber.org/fx"

	"babylog/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewBabyController),
	fx.Provide(controllers.NewTrackingController),
	fx.Provide(controllers.NewPhotoController),
	fx.Provide(controllers.NewCaregiverController))
