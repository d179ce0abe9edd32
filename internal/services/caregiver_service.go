package services

import (
	"context"
	"errors"

	"babylog/internal/models/db_models"
	"babylog/internal/repositories"
	"babylog/pkg/utils"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CaregiverServiceInterface interface {
	AddCaregiver(ctx context.Context, userID, babyID, targetUserID uint, relationship string, permissions []string) error
	RemoveCaregiver(ctx context.Context, userID, babyID, targetUserID uint) error
	RespondToInvite(ctx context.Context, userID, babyID uint, accept bool) error
	TransferOwnership(ctx context.Context, userID, babyID, newOwnerID uint) error
	InviteCaregiver(ctx context.Context, userID, babyID uint, email string) error
}

type CaregiverService struct {
	babyRepo      repositories.BabyRepository
	caregiverRepo repositories.CaregiverRepository
	inviteRepo    repositories.InviteRepository
	userRepo      repositories.UserRepository
}

func NewCaregiverService(
	babyRepo repositories.BabyRepository,
	caregiverRepo repositories.CaregiverRepository,
	inviteRepo repositories.InviteRepository,
	userRepo repositories.UserRepository,
) CaregiverServiceInterface {
	return &CaregiverService{
		babyRepo:      babyRepo,
		caregiverRepo: caregiverRepo,
		inviteRepo:    inviteRepo,
		userRepo:      userRepo,
	}
}

// AddCaregiver grants another account access to the baby. Only the baby's
// owner may manage its caregiver list.
func (s *CaregiverService) AddCaregiver(ctx context.Context, userID, babyID, targetUserID uint, relationship string, permissions []string) error {
	baby, err := requireBabyAccess(ctx, s.babyRepo, userID, babyID)
	if err != nil {
		return err
	}
	if baby.OwnerID != userID {
		return utils.ErrForbidden
	}

	target, err := s.userRepo.FindByID(ctx, targetUserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if target == nil {
		return utils.ErrAccountNotFound
	}

	if relationship == "" {
		relationship = "CAREGIVER"
	}
	if len(permissions) == 0 {
		permissions = []string{"view", "log"}
	}

	caregiver := &db_models.BabyCaregiver{
		BabyID:       babyID,
		UserID:       targetUserID,
		Relationship: relationship,
		Permissions:  pq.StringArray(permissions),
	}
	if err := s.caregiverRepo.Insert(ctx, caregiver); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// RemoveCaregiver deletes by the (babyId, userId) composite key. Only the
// baby's owner may manage its caregiver list.
func (s *CaregiverService) RemoveCaregiver(ctx context.Context, userID, babyID, targetUserID uint) error {
	baby, err := requireBabyAccess(ctx, s.babyRepo, userID, babyID)
	if err != nil {
		return err
	}
	if baby.OwnerID != userID {
		return utils.ErrForbidden
	}

	if err := s.caregiverRepo.DeleteByBabyAndUser(ctx, babyID, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrCaregiverNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

// RespondToInvite lets the invited account accept or decline a pending
// invite, matched by the caller's own email. Accepting records a PARENT
// caregiver row; either answer closes the invite.
func (s *CaregiverService) RespondToInvite(ctx context.Context, userID, babyID uint, accept bool) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	invite, err := s.inviteRepo.FindByEmailAndBaby(ctx, utils.NormalizeEmail(user.Email), babyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if invite == nil || invite.Status != db_models.InviteStatusPending {
		return utils.ErrInviteNotFound
	}

	if !accept {
		if err := s.inviteRepo.UpdateStatus(ctx, invite.ID, db_models.InviteStatusDeclined); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	caregiver := &db_models.BabyCaregiver{
		BabyID:       babyID,
		UserID:       userID,
		Relationship: "PARENT",
		Permissions:  pq.StringArray{"view", "log"},
	}
	if err := s.caregiverRepo.Insert(ctx, caregiver); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDatabaseError
	}
	if err := s.inviteRepo.UpdateStatus(ctx, invite.ID, db_models.InviteStatusAccepted); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CaregiverService) TransferOwnership(ctx context.Context, userID, babyID, newOwnerID uint) error {
	baby, err := requireBabyAccess(ctx, s.babyRepo, userID, babyID)
	if err != nil {
		return err
	}
	if baby.OwnerID != userID {
		return utils.ErrForbidden
	}

	newOwner, err := s.userRepo.FindByID(ctx, newOwnerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if newOwner == nil {
		return utils.ErrAccountNotFound
	}

	if err := s.babyRepo.UpdateOwner(ctx, babyID, newOwnerID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CaregiverService) InviteCaregiver(ctx context.Context, userID, babyID uint, email string) error {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return utils.ErrInvalidInput
	}

	if _, err := requireBabyAccess(ctx, s.babyRepo, userID, babyID); err != nil {
		return err
	}

	invite := &db_models.ParentInvite{
		Email:    email,
		BabyID:   babyID,
		SenderID: userID,
		Status:   db_models.InviteStatusPending,
	}
	if err := s.inviteRepo.Insert(ctx, invite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrInviteAlreadySent
		}
		return utils.ErrDatabaseError
	}
	return nil
}
