package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "You do not have access to this baby")
	case errors.Is(err, ErrBabyNotFound):
		RespondError(c, http.StatusNotFound, "Baby not found")
	case errors.Is(err, ErrEventNotFound):
		RespondError(c, http.StatusNotFound, "Tracking event not found")
	case errors.Is(err, ErrPhotoNotFound):
		RespondError(c, http.StatusNotFound, "Photo not found")
	case errors.Is(err, ErrCaregiverNotFound):
		RespondError(c, http.StatusNotFound, "Caregiver not found")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInviteAlreadySent):
		RespondError(c, http.StatusConflict, "An invite for this email already exists")
	case errors.Is(err, ErrInviteNotFound):
		RespondError(c, http.StatusNotFound, "No open invite for this baby")
	case errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusBadRequest, "Invalid or expired token")
	case errors.Is(err, ErrNoFileSelected):
		RespondError(c, http.StatusBadRequest, "No file selected")
	case errors.Is(err, ErrInvalidFileType):
		RespondError(c, http.StatusBadRequest, "Only image files can be uploaded")
	case errors.Is(err, ErrFileTooLarge):
		RespondError(c, http.StatusBadRequest, "File exceeds the 5 MB limit")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid or missing form fields")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
	case errors.Is(err, ErrStorageError):
		log.Printf("Storage error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Upload failed")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
	}
}
