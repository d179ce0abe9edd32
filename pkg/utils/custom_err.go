package utils

import "errors"

var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("not an owner or caregiver of this baby")
	ErrBabyNotFound       = errors.New("baby not found")
	ErrEventNotFound      = errors.New("tracking event not found")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrCaregiverNotFound  = errors.New("caregiver not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInviteAlreadySent  = errors.New("invite already sent for this email")
	ErrInviteNotFound     = errors.New("no open invite for this baby")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoFileSelected     = errors.New("no file selected")
	ErrInvalidFileType    = errors.New("file is not an image")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrDatabaseError      = errors.New("database error")
	ErrStorageError       = errors.New("object storage error")
)
