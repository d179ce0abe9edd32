package services

import (
	"context"

	"babylog/internal/models/db_models"
	"babylog/internal/repositories"
	"babylog/pkg/utils"
)

// CanAccessBaby is the single owner-or-caregiver predicate applied by every
// baby-scoped operation.
func CanAccessBaby(userID uint, baby *db_models.Baby) bool {
	if baby == nil {
		return false
	}
	if baby.OwnerID == userID {
		return true
	}
	for _, c := range baby.Caregivers {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

// requireBabyAccess resolves the baby with its caregivers and enforces the
// access predicate. Missing baby and missing relation map to distinct
// sentinels so routes can choose redirect targets.
func requireBabyAccess(ctx context.Context, babyRepo repositories.BabyRepository, userID, babyID uint) (*db_models.Baby, error) {
	baby, err := babyRepo.FindByID(ctx, babyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if baby == nil {
		return nil, utils.ErrBabyNotFound
	}
	if !CanAccessBaby(userID, baby) {
		return nil, utils.ErrForbidden
	}
	return baby, nil
}
