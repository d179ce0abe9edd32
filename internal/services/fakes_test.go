package services

import (
	"context"
	"sort"
	"time"

	"babylog/internal/models/db_models"

	"gorm.io/gorm"
)

// In-memory repository fakes honoring the same contracts as the gorm
// implementations: not-found reads return (nil, nil), duplicate inserts
// return gorm.ErrDuplicatedKey, composite deletes report
// gorm.ErrRecordNotFound.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*db_models.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*db_models.User)}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	if f.err != nil {
		return f.err
	}
	if u, ok := f.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func newTestUser(email, passwordHash string) *db_models.User {
	return &db_models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    "Test",
		LastName:     "User",
	}
}

type fakeBabyRepo struct {
	nextID uint
	babies map[uint]*db_models.Baby
	err    error
}

func newFakeBabyRepo() *fakeBabyRepo {
	return &fakeBabyRepo{nextID: 1, babies: make(map[uint]*db_models.Baby)}
}

func (f *fakeBabyRepo) CreateWithOwner(ctx context.Context, baby *db_models.Baby) error {
	if f.err != nil {
		return f.err
	}
	baby.ID = f.nextID
	f.nextID++
	baby.Caregivers = append(baby.Caregivers, db_models.BabyCaregiver{
		BabyID:       baby.ID,
		UserID:       baby.OwnerID,
		Relationship: "PARENT",
	})
	f.babies[baby.ID] = baby
	return nil
}

func (f *fakeBabyRepo) FindByID(ctx context.Context, id uint) (*db_models.Baby, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.babies[id], nil
}

func (f *fakeBabyRepo) FindByUser(ctx context.Context, userID uint) ([]db_models.Baby, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Baby
	for _, b := range f.babies {
		if CanAccessBaby(userID, b) {
			out = append(out, *b)
		}
	}
	// Youngest first, matching the repository's date_of_birth DESC order.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateOfBirth.Equal(out[j].DateOfBirth) {
			return out[i].DateOfBirth.After(out[j].DateOfBirth)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeBabyRepo) UpdateOwner(ctx context.Context, babyID, newOwnerID uint) error {
	if f.err != nil {
		return f.err
	}
	if b, ok := f.babies[babyID]; ok {
		b.OwnerID = newOwnerID
	}
	return nil
}

// addBaby seeds a baby with an owner caregiver row, bypassing validation.
func (f *fakeBabyRepo) addBaby(ownerID uint, firstName string, caregiverIDs ...uint) *db_models.Baby {
	baby := &db_models.Baby{
		FirstName:   firstName,
		LastName:    "Test",
		DateOfBirth: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		OwnerID:     ownerID,
	}
	_ = f.CreateWithOwner(context.Background(), baby)
	for _, id := range caregiverIDs {
		baby.Caregivers = append(baby.Caregivers, db_models.BabyCaregiver{
			BabyID: baby.ID,
			UserID: id,
		})
	}
	return baby
}

type fakeCaregiverRepo struct {
	rows []*db_models.BabyCaregiver
	err  error
}

func (f *fakeCaregiverRepo) Insert(ctx context.Context, caregiver *db_models.BabyCaregiver) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.rows {
		if r.BabyID == caregiver.BabyID && r.UserID == caregiver.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.rows = append(f.rows, caregiver)
	return nil
}

func (f *fakeCaregiverRepo) FindByBabyAndUser(ctx context.Context, babyID, userID uint) (*db_models.BabyCaregiver, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.BabyID == babyID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeCaregiverRepo) DeleteByBabyAndUser(ctx context.Context, babyID, userID uint) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.rows {
		if r.BabyID == babyID && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeInviteRepo struct {
	nextID  uint
	invites []*db_models.ParentInvite
	err     error
}

func (f *fakeInviteRepo) Insert(ctx context.Context, invite *db_models.ParentInvite) error {
	if f.err != nil {
		return f.err
	}
	for _, inv := range f.invites {
		if inv.Email == invite.Email && inv.BabyID == invite.BabyID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	invite.ID = f.nextID
	f.invites = append(f.invites, invite)
	return nil
}

func (f *fakeInviteRepo) FindByEmailAndBaby(ctx context.Context, email string, babyID uint) (*db_models.ParentInvite, error) {
	for _, inv := range f.invites {
		if inv.Email == email && inv.BabyID == babyID {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInviteRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	for _, inv := range f.invites {
		if inv.ID == id {
			inv.Status = status
		}
	}
	return nil
}

type fakeMailService struct {
	invites []string
	resets  []string
	err     error
}

func (f *fakeMailService) SendInviteNotification(to, babyFirstName string) error {
	f.invites = append(f.invites, to)
	return f.err
}

func (f *fakeMailService) SendMailToResetPassword(email, token string) error {
	f.resets = append(f.resets, token)
	return f.err
}

type fakeTrackingRepo struct {
	nextID       uint
	eliminations map[uint]*db_models.Elimination
	feedings     map[uint]*db_models.Feeding
	sleeps       map[uint]*db_models.Sleep
	milestones   map[uint]*db_models.Milestone
	measurements map[uint]*db_models.Measurement
	err          error
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{
		eliminations: make(map[uint]*db_models.Elimination),
		feedings:     make(map[uint]*db_models.Feeding),
		sleeps:       make(map[uint]*db_models.Sleep),
		milestones:   make(map[uint]*db_models.Milestone),
		measurements: make(map[uint]*db_models.Measurement),
	}
}

func (f *fakeTrackingRepo) CreateElimination(ctx context.Context, e *db_models.Elimination) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = f.nextID
	f.eliminations[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) FindElimination(ctx context.Context, id uint) (*db_models.Elimination, error) {
	return f.eliminations[id], f.err
}

func (f *fakeTrackingRepo) SaveElimination(ctx context.Context, e *db_models.Elimination) error {
	if f.err != nil {
		return f.err
	}
	f.eliminations[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) RecentEliminations(ctx context.Context, babyID uint, limit int) ([]db_models.Elimination, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Elimination
	for _, e := range f.eliminations {
		if e.BabyID == babyID && len(out) < limit {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) CreateFeeding(ctx context.Context, e *db_models.Feeding) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = f.nextID
	f.feedings[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) FindFeeding(ctx context.Context, id uint) (*db_models.Feeding, error) {
	return f.feedings[id], f.err
}

func (f *fakeTrackingRepo) SaveFeeding(ctx context.Context, e *db_models.Feeding) error {
	if f.err != nil {
		return f.err
	}
	f.feedings[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) RecentFeedings(ctx context.Context, babyID uint, limit int) ([]db_models.Feeding, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Feeding
	for _, e := range f.feedings {
		if e.BabyID == babyID && len(out) < limit {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) CreateSleep(ctx context.Context, e *db_models.Sleep) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = f.nextID
	f.sleeps[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) FindSleep(ctx context.Context, id uint) (*db_models.Sleep, error) {
	return f.sleeps[id], f.err
}

func (f *fakeTrackingRepo) SaveSleep(ctx context.Context, e *db_models.Sleep) error {
	if f.err != nil {
		return f.err
	}
	f.sleeps[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) RecentSleeps(ctx context.Context, babyID uint, limit int) ([]db_models.Sleep, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Sleep
	for _, e := range f.sleeps {
		if e.BabyID == babyID && len(out) < limit {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) CreateMilestone(ctx context.Context, e *db_models.Milestone) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = f.nextID
	f.milestones[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) FindMilestone(ctx context.Context, id uint) (*db_models.Milestone, error) {
	return f.milestones[id], f.err
}

func (f *fakeTrackingRepo) SaveMilestone(ctx context.Context, e *db_models.Milestone) error {
	if f.err != nil {
		return f.err
	}
	f.milestones[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) RecentMilestones(ctx context.Context, babyID uint, limit int) ([]db_models.Milestone, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Milestone
	for _, e := range f.milestones {
		if e.BabyID == babyID && len(out) < limit {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) CreateMeasurement(ctx context.Context, e *db_models.Measurement) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = f.nextID
	f.measurements[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) FindMeasurement(ctx context.Context, id uint) (*db_models.Measurement, error) {
	return f.measurements[id], f.err
}

func (f *fakeTrackingRepo) SaveMeasurement(ctx context.Context, e *db_models.Measurement) error {
	if f.err != nil {
		return f.err
	}
	f.measurements[e.ID] = e
	return nil
}

func (f *fakeTrackingRepo) RecentMeasurements(ctx context.Context, babyID uint, limit int) ([]db_models.Measurement, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Measurement
	for _, e := range f.measurements {
		if e.BabyID == babyID && len(out) < limit {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakePhotoRepo struct {
	nextID  uint
	photos  map[uint]*db_models.Photo
	babyFor map[uint]uint
	err     error
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{
		photos:  make(map[uint]*db_models.Photo),
		babyFor: make(map[uint]uint),
	}
}

func (f *fakePhotoRepo) CreateForBaby(ctx context.Context, photo *db_models.Photo, babyID uint) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	photo.ID = f.nextID
	f.photos[photo.ID] = photo
	f.babyFor[photo.ID] = babyID
	return nil
}

func (f *fakePhotoRepo) FindByID(ctx context.Context, id uint) (*db_models.Photo, error) {
	return f.photos[id], f.err
}

func (f *fakePhotoRepo) Save(ctx context.Context, photo *db_models.Photo) error {
	if f.err != nil {
		return f.err
	}
	f.photos[photo.ID] = photo
	return nil
}

func (f *fakePhotoRepo) DeleteByID(ctx context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.photos, id)
	delete(f.babyFor, id)
	return nil
}

func (f *fakePhotoRepo) BabyIDForPhoto(ctx context.Context, photoID uint) (uint, error) {
	return f.babyFor[photoID], f.err
}

func (f *fakePhotoRepo) RecentByBaby(ctx context.Context, babyID uint, limit int) ([]db_models.Photo, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Photo
	for id, p := range f.photos {
		if f.babyFor[id] == babyID && len(out) < limit {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeObjectStore implements infra.ObjectStore. uploadURL doubles as the
// presigned PUT target so tests can point it at an httptest server.
type fakeObjectStore struct {
	uploadURL  string
	presignErr error
	deleteErr  error
	deleted    []string
	signed     []string
	failKeys   map[string]bool
}

func (f *fakeObjectStore) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return f.uploadURL, nil
}

func (f *fakeObjectStore) PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	if f.failKeys[key] {
		return "", context.DeadlineExceeded
	}
	f.signed = append(f.signed, key)
	return "https://signed.example.com/" + key, nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}
