package services

import (
	"context"
	"errors"
	"log"
	"time"

	"babylog/internal/models/db_models"
	"babylog/internal/models/request_models"
	"babylog/internal/models/response_models"
	"babylog/internal/repositories"
	mem "babylog/pkg/memcache"
	"babylog/pkg/utils"

	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, *response_models.UserResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error

	// VerifyLogin returns the safe user profile for valid credentials and
	// (nil, nil) for an unknown email or a wrong password.
	VerifyLogin(ctx context.Context, email, password string) (*response_models.UserResponse, error)

	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	userRepo    repositories.UserRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewAccountService(userRepo repositories.UserRepository, mailService IMailService, resetTokens mem.ResetTokenStore) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) VerifyLogin(ctx context.Context, email, password string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, nil
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return nil, nil
	}

	return response_models.BuildUserResponse(user), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, *response_models.UserResponse, error) {
	user, err := a.VerifyLogin(ctx, request.Email, request.Password)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateSessionToken(user.ID)
	if err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	return token, user, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	email := utils.NormalizeEmail(request.Email)
	if !utils.IsValidEmail(email) {
		return utils.ErrInvalidInput
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
	}
	if request.Phone != "" {
		newUser.Phone = &request.Phone
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		// The unique constraint is the real enforcement point; the
		// pre-check above only covers the common case.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, user.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(user.Email, token); err != nil {
		log.Printf("Error sending reset mail to %s: %v", user.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidToken
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	passwordHash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.userRepo.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
