package controllers

import (
	"fmt"
	"net/http"

	"babylog/internal/models/request_models"
	"babylog/internal/services"
	"babylog/pkg/middleware"
	"babylog/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BabyController struct {
	babyService     services.BabyServiceInterface
	trackingService services.TrackingServiceInterface
	photoService    services.PhotoServiceInterface
}

func NewBabyController(
	babyService services.BabyServiceInterface,
	trackingService services.TrackingServiceInterface,
	photoService services.PhotoServiceInterface,
) *BabyController {
	return &BabyController{
		babyService:     babyService,
		trackingService: trackingService,
		photoService:    photoService,
	}
}

// CreateBaby registers a new baby owned by the caller and optionally
// invites a second parent by email.
func (b *BabyController) CreateBaby(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.CreateBabyRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	baby, err := b.babyService.CreateBaby(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if wantsJSON(c) {
		utils.RespondSuccess(c, baby, "Baby created successfully")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/baby/%d", baby.ID))
}

// GetBaby renders the baby detail page: profile, caregivers, the most
// recent tracked events and the latest photos.
func (b *BabyController) GetBaby(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	babyID := parseUintParam(c, "id")
	if babyID == 0 {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	baby, err := b.babyService.GetBaby(c.Request.Context(), userID, babyID)
	if err != nil {
		redirectOnAccessError(c, err)
		return
	}

	events, err := b.trackingService.GetRecentEvents(c.Request.Context(), userID, babyID, 0)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	photos, err := b.photoService.RecentPhotos(c.Request.Context(), userID, babyID, 0)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"baby":          baby,
		"recent_events": events,
		"recent_photos": photos,
	}, "Baby loaded")
}
