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

type CaregiverController struct {
	caregiverService services.CaregiverServiceInterface
	babyService      services.BabyServiceInterface
}

func NewCaregiverController(
	caregiverService services.CaregiverServiceInterface,
	babyService services.BabyServiceInterface,
) *CaregiverController {
	return &CaregiverController{
		caregiverService: caregiverService,
		babyService:      babyService,
	}
}

// AddCaregiver grants another account access to a baby, either directly
// by user id or by emailing an invite.
func (cc *CaregiverController) AddCaregiver(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	babyID := parseUintParam(c, "id")
	if babyID == 0 {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var req request_models.AddCaregiverRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ctx := c.Request.Context()
	var err error
	if req.UserID != 0 {
		err = cc.caregiverService.AddCaregiver(ctx, userID, babyID, req.UserID, req.Relationship, req.Permissions)
	} else {
		err = cc.caregiverService.InviteCaregiver(ctx, userID, babyID, req.Email)
	}
	if err != nil {
		redirectOnAccessError(c, err)
		return
	}

	if wantsJSON(c) {
		utils.RespondSuccess(c, nil, "Caregiver added")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/baby/%d", babyID))
}

// RespondToInvite accepts or declines a pending invite addressed to the
// caller's email.
func (cc *CaregiverController) RespondToInvite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	babyID := parseUintParam(c, "id")
	if babyID == 0 {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var req request_models.RespondInviteRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accept := req.Action == "accept"
	if err := cc.caregiverService.RespondToInvite(c.Request.Context(), userID, babyID, accept); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !accept {
		if wantsJSON(c) {
			utils.RespondSuccess(c, nil, "Invite declined")
			return
		}
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	if wantsJSON(c) {
		utils.RespondSuccess(c, nil, "Invite accepted")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/baby/%d", babyID))
}

// RemoveCaregiver revokes a caregiver's access. Owner only.
func (cc *CaregiverController) RemoveCaregiver(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	babyID := parseUintParam(c, "id")
	targetID := parseUintParam(c, "userId")
	if babyID == 0 || targetID == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid baby or user id")
		return
	}

	if err := cc.caregiverService.RemoveCaregiver(c.Request.Context(), userID, babyID, targetID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Caregiver removed")
}

// TransferOwnership hands a baby over to another existing account.
func (cc *CaregiverController) TransferOwnership(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	babyID := parseUintParam(c, "id")
	if babyID == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid baby id")
		return
	}

	var req request_models.TransferOwnerRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.caregiverService.TransferOwnership(c.Request.Context(), userID, babyID, req.NewOwnerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Ownership transferred")
}
