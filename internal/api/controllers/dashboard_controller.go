package controllers

import (
	"net/http"

	"babylog/internal/services"
	"babylog/pkg/middleware"
	"babylog/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	babyService services.BabyServiceInterface
}

func NewDashboardController(babyService services.BabyServiceInterface) *DashboardController {
	return &DashboardController{
		babyService: babyService,
	}
}

// Home is the login landing page. Authenticated callers are sent
// straight to their dashboard.
func (d *DashboardController) Home(c *gin.Context) {
	if _, ok := middleware.UserID(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	utils.RespondSuccess(c, gin.H{"login_url": "/accounts/login"}, "Sign in to continue")
}

// Dashboard lists every baby the caller owns or helps care for.
func (d *DashboardController) Dashboard(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	dashboard, err := d.babyService.GetUserBabies(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard loaded")
}
