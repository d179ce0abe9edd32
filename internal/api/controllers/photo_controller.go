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

type PhotoController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotoController(photoService services.PhotoServiceInterface) *PhotoController {
	return &PhotoController{
		photoService: photoService,
	}
}

// UploadPhoto accepts a multipart image upload, stores it in the object
// store and records it against the baby.
func (p *PhotoController) UploadPhoto(c *gin.Context) {
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

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNoFileSelected)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	var caption *string
	if v := c.PostForm("caption"); v != "" {
		caption = &v
	}

	upload := services.UploadedPhoto{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	}

	_, err = p.photoService.Upload(c.Request.Context(), userID, babyID, upload, caption)
	if err != nil {
		redirectOnAccessError(c, err)
		return
	}

	if wantsJSON(c) {
		utils.RespondSuccess(c, nil, "Photo uploaded")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/baby/%d", babyID))
}

// UpdatePhoto changes a photo's caption or timestamp. Responds with the
// compact success/error shape the gallery script expects.
func (p *PhotoController) UpdatePhoto(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	photoID := parseUintParam(c, "photoId")
	if photoID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid photo id"})
		return
	}

	var req request_models.EditPhotoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if err := p.photoService.EditPhoto(c.Request.Context(), userID, photoID, req); err != nil {
		respondPhotoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePhoto removes the photo from storage and the database.
func (p *PhotoController) DeletePhoto(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	photoID := parseUintParam(c, "photoId")
	if photoID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid photo id"})
		return
	}

	if err := p.photoService.DeletePhoto(c.Request.Context(), userID, photoID); err != nil {
		respondPhotoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondPhotoError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	msg := "Something went wrong"
	switch {
	case isOneOf(err, utils.ErrPhotoNotFound, utils.ErrBabyNotFound):
		code, msg = http.StatusNotFound, "Photo not found"
	case isOneOf(err, utils.ErrForbidden):
		code, msg = http.StatusForbidden, "You do not have access to this photo"
	case isOneOf(err, utils.ErrInvalidInput):
		code, msg = http.StatusBadRequest, "Invalid or missing fields"
	case isOneOf(err, utils.ErrStorageError):
		msg = "Could not delete the stored file"
	}
	c.JSON(code, gin.H{"success": false, "error": msg})
}
