package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"babylog/internal/models/db_models"
	"babylog/internal/models/request_models"
	"babylog/internal/models/response_models"
	"babylog/internal/repositories"
	"babylog/pkg/utils"

	"gorm.io/gorm"
)

type BabyServiceInterface interface {
	CreateBaby(ctx context.Context, ownerID uint, request request_models.CreateBabyRequest) (*response_models.BabyResponse, error)
	GetBaby(ctx context.Context, userID, babyID uint) (*response_models.BabyResponse, error)
	GetUserBabies(ctx context.Context, userID uint) (*response_models.DashboardResponse, error)
	InviteParent(ctx context.Context, userID, babyID uint, email string) error
}

type BabyService struct {
	babyRepo    repositories.BabyRepository
	inviteRepo  repositories.InviteRepository
	mailService IMailService
}

func NewBabyService(babyRepo repositories.BabyRepository, inviteRepo repositories.InviteRepository, mailService IMailService) BabyServiceInterface {
	return &BabyService{
		babyRepo:    babyRepo,
		inviteRepo:  inviteRepo,
		mailService: mailService,
	}
}

func (b *BabyService) CreateBaby(ctx context.Context, ownerID uint, request request_models.CreateBabyRequest) (*response_models.BabyResponse, error) {
	firstName := strings.TrimSpace(request.FirstName)
	lastName := strings.TrimSpace(request.LastName)
	if firstName == "" || lastName == "" {
		return nil, utils.ErrInvalidInput
	}

	dateOfBirth, err := utils.ParseDateOfBirth(request.DateOfBirth)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if request.InviteParent {
		if request.ParentEmail == "" || !utils.IsValidEmail(request.ParentEmail) {
			return nil, utils.ErrInvalidInput
		}
	}

	baby := &db_models.Baby{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dateOfBirth,
		OwnerID:     ownerID,
	}
	if gender := strings.TrimSpace(request.Gender); gender != "" {
		baby.Gender = &gender
	}

	if err := b.babyRepo.CreateWithOwner(ctx, baby); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if request.InviteParent {
		if err := b.InviteParent(ctx, ownerID, baby.ID, request.ParentEmail); err != nil {
			// The baby exists at this point; surface the invite failure
			// without undoing the creation.
			return nil, err
		}
	}

	created, err := b.babyRepo.FindByID(ctx, baby.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildBabyResponse(created), nil
}

func (b *BabyService) GetBaby(ctx context.Context, userID, babyID uint) (*response_models.BabyResponse, error) {
	baby, err := requireBabyAccess(ctx, b.babyRepo, userID, babyID)
	if err != nil {
		return nil, err
	}
	return response_models.BuildBabyResponse(baby), nil
}

func (b *BabyService) GetUserBabies(ctx context.Context, userID uint) (*response_models.DashboardResponse, error) {
	babies, err := b.babyRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildDashboardResponse(userID, babies), nil
}

func (b *BabyService) InviteParent(ctx context.Context, userID, babyID uint, email string) error {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return utils.ErrInvalidInput
	}

	baby, err := requireBabyAccess(ctx, b.babyRepo, userID, babyID)
	if err != nil {
		return err
	}

	invite := &db_models.ParentInvite{
		Email:    email,
		BabyID:   babyID,
		SenderID: userID,
		Status:   db_models.InviteStatusPending,
	}
	if err := b.inviteRepo.Insert(ctx, invite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrInviteAlreadySent
		}
		return utils.ErrDatabaseError
	}

	// The invite row is the durable effect; the notification is best-effort.
	if err := b.mailService.SendInviteNotification(email, baby.FirstName); err != nil {
		log.Printf("Error sending invite mail to %s: %v", email, err)
	}
	return nil
}
