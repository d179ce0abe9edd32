package services

import (
	"context"
	"sync"

	"babylog/internal/models/db_models"
	"babylog/internal/models/request_models"
	"babylog/internal/models/response_models"
	"babylog/internal/repositories"
	"babylog/pkg/utils"
)

const defaultRecentLimit = 5

type TrackingServiceInterface interface {
	TrackElimination(ctx context.Context, userID, babyID uint, request request_models.TrackEliminationRequest) (*db_models.Elimination, error)
	EditElimination(ctx context.Context, userID, id uint, request request_models.EditEliminationRequest) (*db_models.Elimination, error)
	GetElimination(ctx context.Context, userID, id uint) (*db_models.Elimination, error)

	TrackFeeding(ctx context.Context, userID, babyID uint, request request_models.TrackFeedingRequest) (*db_models.Feeding, error)
	EditFeeding(ctx context.Context, userID, id uint, request request_models.EditFeedingRequest) (*db_models.Feeding, error)
	GetFeeding(ctx context.Context, userID, id uint) (*db_models.Feeding, error)

	TrackSleep(ctx context.Context, userID, babyID uint, request request_models.TrackSleepRequest) (*db_models.Sleep, error)
	EditSleep(ctx context.Context, userID, id uint, request request_models.EditSleepRequest) (*db_models.Sleep, error)
	GetSleep(ctx context.Context, userID, id uint) (*db_models.Sleep, error)

	TrackMilestone(ctx context.Context, userID, babyID uint, request request_models.TrackMilestoneRequest) (*db_models.Milestone, error)
	EditMilestone(ctx context.Context, userID, id uint, request request_models.EditMilestoneRequest) (*db_models.Milestone, error)
	GetMilestone(ctx context.Context, userID, id uint) (*db_models.Milestone, error)

	TrackMeasurement(ctx context.Context, userID, babyID uint, request request_models.TrackMeasurementRequest) (*db_models.Measurement, error)
	EditMeasurement(ctx context.Context, userID, id uint, request request_models.EditMeasurementRequest) (*db_models.Measurement, error)
	GetMeasurement(ctx context.Context, userID, id uint) (*db_models.Measurement, error)

	// GetRecentEvents fans the per-kind queries out concurrently; any
	// single failure fails the whole batch.
	GetRecentEvents(ctx context.Context, userID, babyID uint, limit int) (*response_models.RecentEvents, error)
}

type TrackingService struct {
	trackingRepo repositories.TrackingRepository
	babyRepo     repositories.BabyRepository
}

func NewTrackingService(trackingRepo repositories.TrackingRepository, babyRepo repositories.BabyRepository) TrackingServiceInterface {
	return &TrackingService{
		trackingRepo: trackingRepo,
		babyRepo:     babyRepo,
	}
}

func (t *TrackingService) TrackElimination(ctx context.Context, userID, babyID uint, request request_models.TrackEliminationRequest) (*db_models.Elimination, error) {
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, babyID); err != nil {
		return nil, err
	}

	timestamp, err := utils.ParseTimestamp(request.Timestamp)
	if err != nil || request.Type == "" {
		return nil, utils.ErrInvalidInput
	}

	event := &db_models.Elimination{
		BabyID:    babyID,
		Timestamp: timestamp,
		Type:      request.Type,
		Weight:    request.Weight,
		Location:  request.Location,
		Notes:     request.Notes,
		Success:   true, // always recorded as successful, whatever the caller sent
	}
	if err := t.trackingRepo.CreateElimination(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) EditElimination(ctx context.Context, userID, id uint, request request_models.EditEliminationRequest) (*db_models.Elimination, error) {
	event, err := t.GetElimination(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if request.Timestamp != nil {
		timestamp, err := utils.ParseTimestamp(*request.Timestamp)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.Timestamp = timestamp
	}
	if request.Type != nil {
		event.Type = *request.Type
	}
	if request.Weight != nil {
		event.Weight = request.Weight
	}
	if request.Location != nil {
		event.Location = request.Location
	}
	if request.Notes != nil {
		event.Notes = request.Notes
	}

	if err := t.trackingRepo.SaveElimination(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) GetElimination(ctx context.Context, userID, id uint) (*db_models.Elimination, error) {
	event, err := t.trackingRepo.FindElimination(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, event.BabyID); err != nil {
		return nil, err
	}
	return event, nil
}

func (t *TrackingService) TrackFeeding(ctx context.Context, userID, babyID uint, request request_models.TrackFeedingRequest) (*db_models.Feeding, error) {
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, babyID); err != nil {
		return nil, err
	}

	startTime, err := utils.ParseTimestamp(request.StartTime)
	if err != nil || request.Type == "" {
		return nil, utils.ErrInvalidInput
	}

	event := &db_models.Feeding{
		BabyID:    babyID,
		StartTime: startTime,
		Type:      request.Type,
		Side:      request.Side,
		Amount:    request.Amount,
		Food:      request.Food,
		Notes:     request.Notes,
	}
	if request.EndTime != nil {
		endTime, err := utils.ParseTimestamp(*request.EndTime)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.EndTime = &endTime
	}

	if err := t.trackingRepo.CreateFeeding(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) EditFeeding(ctx context.Context, userID, id uint, request request_models.EditFeedingRequest) (*db_models.Feeding, error) {
	event, err := t.GetFeeding(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if request.StartTime != nil {
		startTime, err := utils.ParseTimestamp(*request.StartTime)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.StartTime = startTime
	}
	if request.EndTime != nil {
		endTime, err := utils.ParseTimestamp(*request.EndTime)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.EndTime = &endTime
	}
	if request.Type != nil {
		event.Type = *request.Type
	}
	if request.Side != nil {
		event.Side = request.Side
	}
	if request.Amount != nil {
		event.Amount = request.Amount
	}
	if request.Food != nil {
		event.Food = request.Food
	}
	if request.Notes != nil {
		event.Notes = request.Notes
	}

	if err := t.trackingRepo.SaveFeeding(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) GetFeeding(ctx context.Context, userID, id uint) (*db_models.Feeding, error) {
	event, err := t.trackingRepo.FindFeeding(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, event.BabyID); err != nil {
		return nil, err
	}
	return event, nil
}

func (t *TrackingService) TrackSleep(ctx context.Context, userID, babyID uint, request request_models.TrackSleepRequest) (*db_models.Sleep, error) {
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, babyID); err != nil {
		return nil, err
	}

	startTime, err := utils.ParseTimestamp(request.StartTime)
	if err != nil || request.Type == "" {
		return nil, utils.ErrInvalidInput
	}
	if request.Quality != nil && (*request.Quality < 1 || *request.Quality > 5) {
		return nil, utils.ErrInvalidInput
	}

	event := &db_models.Sleep{
		BabyID:          babyID,
		StartTime:       startTime,
		Type:            request.Type,
		How:             request.How,
		WhereFellAsleep: request.WhereFellAsleep,
		WhereSlept:      request.WhereSlept,
		Quality:         request.Quality,
		Notes:           request.Notes,
	}
	if request.EndTime != nil {
		endTime, err := utils.ParseTimestamp(*request.EndTime)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.EndTime = &endTime
	}

	if err := t.trackingRepo.CreateSleep(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) EditSleep(ctx context.Context, userID, id uint, request request_models.EditSleepRequest) (*db_models.Sleep, error) {
	event, err := t.GetSleep(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if request.StartTime != nil {
		startTime, err := utils.ParseTimestamp(*request.StartTime)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.StartTime = startTime
	}
	if request.EndTime != nil {
		endTime, err := utils.ParseTimestamp(*request.EndTime)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.EndTime = &endTime
	}
	if request.Type != nil {
		event.Type = *request.Type
	}
	if request.How != nil {
		event.How = request.How
	}
	if request.WhereFellAsleep != nil {
		event.WhereFellAsleep = request.WhereFellAsleep
	}
	if request.WhereSlept != nil {
		event.WhereSlept = request.WhereSlept
	}
	if request.Quality != nil {
		if *request.Quality < 1 || *request.Quality > 5 {
			return nil, utils.ErrInvalidInput
		}
		event.Quality = request.Quality
	}
	if request.Notes != nil {
		event.Notes = request.Notes
	}

	if err := t.trackingRepo.SaveSleep(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) GetSleep(ctx context.Context, userID, id uint) (*db_models.Sleep, error) {
	event, err := t.trackingRepo.FindSleep(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, event.BabyID); err != nil {
		return nil, err
	}
	return event, nil
}

func (t *TrackingService) TrackMilestone(ctx context.Context, userID, babyID uint, request request_models.TrackMilestoneRequest) (*db_models.Milestone, error) {
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, babyID); err != nil {
		return nil, err
	}

	date, err := utils.ParseTimestamp(request.Date)
	if err != nil || request.Category == "" || request.Title == "" {
		return nil, utils.ErrInvalidInput
	}

	event := &db_models.Milestone{
		BabyID:      babyID,
		Date:        date,
		Category:    request.Category,
		Title:       request.Title,
		Description: request.Description,
		Notes:       request.Notes,
	}
	if err := t.trackingRepo.CreateMilestone(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) EditMilestone(ctx context.Context, userID, id uint, request request_models.EditMilestoneRequest) (*db_models.Milestone, error) {
	event, err := t.GetMilestone(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if request.Date != nil {
		date, err := utils.ParseTimestamp(*request.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.Date = date
	}
	if request.Category != nil {
		event.Category = *request.Category
	}
	if request.Title != nil {
		event.Title = *request.Title
	}
	if request.Description != nil {
		event.Description = request.Description
	}
	if request.Notes != nil {
		event.Notes = request.Notes
	}

	if err := t.trackingRepo.SaveMilestone(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) GetMilestone(ctx context.Context, userID, id uint) (*db_models.Milestone, error) {
	event, err := t.trackingRepo.FindMilestone(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, event.BabyID); err != nil {
		return nil, err
	}
	return event, nil
}

func (t *TrackingService) TrackMeasurement(ctx context.Context, userID, babyID uint, request request_models.TrackMeasurementRequest) (*db_models.Measurement, error) {
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, babyID); err != nil {
		return nil, err
	}

	date, err := utils.ParseTimestamp(request.Date)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if request.Weight == nil && request.Height == nil && request.HeadCirc == nil {
		return nil, utils.ErrInvalidInput
	}

	event := &db_models.Measurement{
		BabyID:   babyID,
		Date:     date,
		Weight:   request.Weight,
		Height:   request.Height,
		HeadCirc: request.HeadCirc,
		Notes:    request.Notes,
	}
	if err := t.trackingRepo.CreateMeasurement(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) EditMeasurement(ctx context.Context, userID, id uint, request request_models.EditMeasurementRequest) (*db_models.Measurement, error) {
	event, err := t.GetMeasurement(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if request.Date != nil {
		date, err := utils.ParseTimestamp(*request.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.Date = date
	}
	if request.Weight != nil {
		event.Weight = request.Weight
	}
	if request.Height != nil {
		event.Height = request.Height
	}
	if request.HeadCirc != nil {
		event.HeadCirc = request.HeadCirc
	}
	if request.Notes != nil {
		event.Notes = request.Notes
	}

	if err := t.trackingRepo.SaveMeasurement(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (t *TrackingService) GetMeasurement(ctx context.Context, userID, id uint) (*db_models.Measurement, error) {
	event, err := t.trackingRepo.FindMeasurement(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, event.BabyID); err != nil {
		return nil, err
	}
	return event, nil
}

func (t *TrackingService) GetRecentEvents(ctx context.Context, userID, babyID uint, limit int) (*response_models.RecentEvents, error) {
	if _, err := requireBabyAccess(ctx, t.babyRepo, userID, babyID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	out := &response_models.RecentEvents{}
	errs := make([]error, 5)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		out.Eliminations, errs[0] = t.trackingRepo.RecentEliminations(ctx, babyID, limit)
	}()
	go func() {
		defer wg.Done()
		out.Feedings, errs[1] = t.trackingRepo.RecentFeedings(ctx, babyID, limit)
	}()
	go func() {
		defer wg.Done()
		out.SleepSessions, errs[2] = t.trackingRepo.RecentSleeps(ctx, babyID, limit)
	}()
	go func() {
		defer wg.Done()
		out.Milestones, errs[3] = t.trackingRepo.RecentMilestones(ctx, babyID, limit)
	}()
	go func() {
		defer wg.Done()
		out.Measurements, errs[4] = t.trackingRepo.RecentMeasurements(ctx, babyID, limit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return out, nil
}
