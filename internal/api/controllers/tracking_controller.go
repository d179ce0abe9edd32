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

// Tracking type slugs as they appear in URLs.
const (
	TrackElimination = "elimination"
	TrackFeeding     = "feeding"
	TrackSleep       = "sleep"
	TrackMilestone   = "milestone"
	TrackMeasurement = "measurement"
)

type TrackingController struct {
	babyService     services.BabyServiceInterface
	trackingService services.TrackingServiceInterface
}

func NewTrackingController(
	babyService services.BabyServiceInterface,
	trackingService services.TrackingServiceInterface,
) *TrackingController {
	return &TrackingController{
		babyService:     babyService,
		trackingService: trackingService,
	}
}

// TrackingForm serves the entry form for a tracking type. The baby is
// loaded so the page can show who the entry is for.
func (t *TrackingController) TrackingForm(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	babyID := parseUintParam(c, "id")
	trackingType := c.Param("type")
	if babyID == 0 || !validTrackingType(trackingType) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	baby, err := t.babyService.GetBaby(c.Request.Context(), userID, babyID)
	if err != nil {
		redirectOnAccessError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"baby":          baby,
		"tracking_type": trackingType,
	}, "Tracking form loaded")
}

// SubmitTracking records a new event of the type named in the URL and
// sends the browser back to the baby page.
func (t *TrackingController) SubmitTracking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	babyID := parseUintParam(c, "id")
	trackingType := c.Param("type")
	if babyID == 0 || !validTrackingType(trackingType) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ctx := c.Request.Context()
	var err error
	switch trackingType {
	case TrackElimination:
		var req request_models.TrackEliminationRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.TrackElimination(ctx, userID, babyID, req)
		}
	case TrackFeeding:
		var req request_models.TrackFeedingRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.TrackFeeding(ctx, userID, babyID, req)
		}
	case TrackSleep:
		var req request_models.TrackSleepRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.TrackSleep(ctx, userID, babyID, req)
		}
	case TrackMilestone:
		var req request_models.TrackMilestoneRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.TrackMilestone(ctx, userID, babyID, req)
		}
	case TrackMeasurement:
		var req request_models.TrackMeasurementRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.TrackMeasurement(ctx, userID, babyID, req)
		}
	}
	if err != nil {
		redirectOnAccessError(c, err)
		return
	}

	if wantsJSON(c) {
		utils.RespondSuccess(c, nil, "Event recorded")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/baby/%d", babyID))
}

// EditForm serves the pre-filled edit form for an existing event.
func (t *TrackingController) EditForm(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	babyID := parseUintParam(c, "id")
	eventID := parseUintParam(c, "eventId")
	trackingType := c.Param("trackingType")
	if babyID == 0 || eventID == 0 || !validTrackingType(trackingType) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ctx := c.Request.Context()
	var event any
	var err error
	switch trackingType {
	case TrackElimination:
		event, err = t.trackingService.GetElimination(ctx, userID, eventID)
	case TrackFeeding:
		event, err = t.trackingService.GetFeeding(ctx, userID, eventID)
	case TrackSleep:
		event, err = t.trackingService.GetSleep(ctx, userID, eventID)
	case TrackMilestone:
		event, err = t.trackingService.GetMilestone(ctx, userID, eventID)
	case TrackMeasurement:
		event, err = t.trackingService.GetMeasurement(ctx, userID, eventID)
	}
	if err != nil {
		redirectOnAccessError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"tracking_type": trackingType,
		"event":         event,
	}, "Edit form loaded")
}

// SubmitEdit applies a partial update to an existing event. Fields left
// blank keep their stored values.
func (t *TrackingController) SubmitEdit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	babyID := parseUintParam(c, "id")
	eventID := parseUintParam(c, "eventId")
	trackingType := c.Param("trackingType")
	if babyID == 0 || eventID == 0 || !validTrackingType(trackingType) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ctx := c.Request.Context()
	var err error
	switch trackingType {
	case TrackElimination:
		var req request_models.EditEliminationRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.EditElimination(ctx, userID, eventID, req)
		}
	case TrackFeeding:
		var req request_models.EditFeedingRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.EditFeeding(ctx, userID, eventID, req)
		}
	case TrackSleep:
		var req request_models.EditSleepRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.EditSleep(ctx, userID, eventID, req)
		}
	case TrackMilestone:
		var req request_models.EditMilestoneRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.EditMilestone(ctx, userID, eventID, req)
		}
	case TrackMeasurement:
		var req request_models.EditMeasurementRequest
		if err = bindForm(c, &req); err == nil {
			_, err = t.trackingService.EditMeasurement(ctx, userID, eventID, req)
		}
	}
	if err != nil {
		redirectOnAccessError(c, err)
		return
	}

	if wantsJSON(c) {
		utils.RespondSuccess(c, nil, "Event updated")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/baby/%d", babyID))
}

func validTrackingType(t string) bool {
	switch t {
	case TrackElimination, TrackFeeding, TrackSleep, TrackMilestone, TrackMeasurement:
		return true
	}
	return false
}
