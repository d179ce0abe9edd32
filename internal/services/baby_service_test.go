package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"babylog/internal/models/request_models"
	"babylog/pkg/utils"
)

func TestCreateBaby(t *testing.T) {
	tests := []struct {
		name    string
		request request_models.CreateBabyRequest
		wantErr error
	}{
		{
			name: "valid",
			request: request_models.CreateBabyRequest{
				FirstName:   "June",
				LastName:    "Doe",
				DateOfBirth: "2024-01-15",
				Gender:      "F",
			},
		},
		{
			name: "names are trimmed",
			request: request_models.CreateBabyRequest{
				FirstName:   "  June ",
				LastName:    " Doe  ",
				DateOfBirth: "2024-01-15",
			},
		},
		{
			name: "missing first name",
			request: request_models.CreateBabyRequest{
				LastName:    "Doe",
				DateOfBirth: "2024-01-15",
			},
			wantErr: utils.ErrInvalidInput,
		},
		{
			name: "bad date of birth",
			request: request_models.CreateBabyRequest{
				FirstName:   "June",
				LastName:    "Doe",
				DateOfBirth: "soon",
			},
			wantErr: utils.ErrInvalidInput,
		},
		{
			name: "invite without a valid email",
			request: request_models.CreateBabyRequest{
				FirstName:    "June",
				LastName:     "Doe",
				DateOfBirth:  "2024-01-15",
				InviteParent: true,
				ParentEmail:  "not-an-email",
			},
			wantErr: utils.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			babyRepo := newFakeBabyRepo()
			svc := NewBabyService(babyRepo, &fakeInviteRepo{}, &fakeMailService{})

			baby, err := svc.CreateBaby(context.Background(), 1, tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateBaby() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if baby.FirstName != "June" || baby.LastName != "Doe" {
				t.Errorf("names = %q %q", baby.FirstName, baby.LastName)
			}

			stored, _ := babyRepo.FindByID(context.Background(), baby.ID)
			if stored.OwnerID != 1 {
				t.Errorf("owner = %d, want 1", stored.OwnerID)
			}
			// Creation must leave the owner as a caregiver too.
			if !CanAccessBaby(1, stored) {
				t.Error("owner cannot access their own baby")
			}
		})
	}
}

func TestCreateBabyWithParentInvite(t *testing.T) {
	babyRepo := newFakeBabyRepo()
	inviteRepo := &fakeInviteRepo{}
	mail := &fakeMailService{}
	svc := NewBabyService(babyRepo, inviteRepo, mail)

	baby, err := svc.CreateBaby(context.Background(), 1, request_models.CreateBabyRequest{
		FirstName:    "June",
		LastName:     "Doe",
		DateOfBirth:  "2024-01-15",
		InviteParent: true,
		ParentEmail:  "Partner@Example.com",
	})
	if err != nil {
		t.Fatalf("CreateBaby() error = %v", err)
	}

	invite, _ := inviteRepo.FindByEmailAndBaby(context.Background(), "partner@example.com", baby.ID)
	if invite == nil {
		t.Fatal("invite was not recorded")
	}
	if invite.Status != "PENDING" {
		t.Errorf("invite status = %q, want PENDING", invite.Status)
	}
	if len(mail.invites) != 1 {
		t.Errorf("invite mails sent = %d, want 1", len(mail.invites))
	}
}

func TestGetBabyAccess(t *testing.T) {
	babyRepo := newFakeBabyRepo()
	baby := babyRepo.addBaby(1, "June", 2)
	svc := NewBabyService(babyRepo, &fakeInviteRepo{}, &fakeMailService{})

	tests := []struct {
		name    string
		userID  uint
		babyID  uint
		wantErr error
	}{
		{name: "owner", userID: 1, babyID: baby.ID},
		{name: "caregiver", userID: 2, babyID: baby.ID},
		{name: "stranger", userID: 3, babyID: baby.ID, wantErr: utils.ErrForbidden},
		{name: "unknown baby", userID: 1, babyID: 99, wantErr: utils.ErrBabyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetBaby(context.Background(), tt.userID, tt.babyID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetBaby() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetUserBabies(t *testing.T) {
	babyRepo := newFakeBabyRepo()
	owned := babyRepo.addBaby(1, "Owned")
	owned.DateOfBirth = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	shared := babyRepo.addBaby(2, "Shared", 1)
	shared.DateOfBirth = time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	babyRepo.addBaby(3, "Unrelated")
	svc := NewBabyService(babyRepo, &fakeInviteRepo{}, &fakeMailService{})

	dashboard, err := svc.GetUserBabies(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUserBabies() error = %v", err)
	}
	if len(dashboard.Babies) != 2 {
		t.Fatalf("babies = %d, want 2", len(dashboard.Babies))
	}

	// Youngest baby first.
	if dashboard.Babies[0].ID != shared.ID || dashboard.Babies[1].ID != owned.ID {
		t.Errorf("order = [%d %d], want [%d %d]",
			dashboard.Babies[0].ID, dashboard.Babies[1].ID, shared.ID, owned.ID)
	}

	for _, summary := range dashboard.Babies {
		switch summary.ID {
		case owned.ID:
			if !summary.IsOwner {
				t.Error("owned baby not flagged as owned")
			}
		case shared.ID:
			if summary.IsOwner {
				t.Error("shared baby flagged as owned")
			}
		default:
			t.Errorf("unexpected baby %d in dashboard", summary.ID)
		}
	}
}

func TestInviteParent(t *testing.T) {
	babyRepo := newFakeBabyRepo()
	baby := babyRepo.addBaby(1, "June")
	inviteRepo := &fakeInviteRepo{}
	svc := NewBabyService(babyRepo, inviteRepo, &fakeMailService{})

	if err := svc.InviteParent(context.Background(), 1, baby.ID, "partner@example.com"); err != nil {
		t.Fatalf("InviteParent() error = %v", err)
	}

	// Same email again for the same baby.
	err := svc.InviteParent(context.Background(), 1, baby.ID, "partner@example.com")
	if !errors.Is(err, utils.ErrInviteAlreadySent) {
		t.Errorf("duplicate invite error = %v, want ErrInviteAlreadySent", err)
	}

	// A stranger cannot invite anyone.
	err = svc.InviteParent(context.Background(), 9, baby.ID, "other@example.com")
	if !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("stranger invite error = %v, want ErrForbidden", err)
	}
}

func TestInviteParentMailFailureIsNotFatal(t *testing.T) {
	babyRepo := newFakeBabyRepo()
	baby := babyRepo.addBaby(1, "June")
	inviteRepo := &fakeInviteRepo{}
	svc := NewBabyService(babyRepo, inviteRepo, &fakeMailService{err: errors.New("smtp down")})

	if err := svc.InviteParent(context.Background(), 1, baby.ID, "partner@example.com"); err != nil {
		t.Fatalf("InviteParent() error = %v, want nil", err)
	}
	if invite, _ := inviteRepo.FindByEmailAndBaby(context.Background(), "partner@example.com", baby.ID); invite == nil {
		t.Error("invite row missing after mail failure")
	}
}
