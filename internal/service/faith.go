package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/apocalypse-study/backend/internal/db"
	"github.com/apocalypse-study/backend/internal/model"
)

const (
	faithListLimit = 100
	maxStreakDays  = 7
	defaultStepSrc = "custom"
)

type FaithRepo interface {
	ListFaithSteps(ctx context.Context, userID int64, limit int) ([]model.FaithStep, error)
	InsertFaithStep(ctx context.Context, userID int64, title string, passage, meditation *string, step int, source string) (*model.FaithStep, error)
	SetFaithStepCompletion(ctx context.Context, userID, stepID int64, completed bool) (*model.FaithStep, error)
	DeleteFaithStep(ctx context.Context, userID, stepID int64) (bool, error)
	GetFaithStats(ctx context.Context, userID int64) (total, completed, recentDays int, err error)
}

type FaithService struct {
	repo FaithRepo
}

func NewFaithService(repo FaithRepo) *FaithService {
	return &FaithService{repo: repo}
}

func (s *FaithService) List(ctx context.Context, userID int64) ([]model.FaithStep, error) {
	return s.repo.ListFaithSteps(ctx, userID, faithListLimit)
}

func (s *FaithService) Create(ctx context.Context, userID int64, req model.FaithStepCreateRequest) (*model.FaithStep, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || req.Step < 1 {
		return nil, fmt.Errorf("%w: title and step are required", ErrInvalidInput)
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = defaultStepSrc
	}

	return s.repo.InsertFaithStep(ctx, userID, title, req.Passage, req.Meditation, req.Step, source)
}

// SetCompletion mutates a step only when it exists and belongs to the caller.
// A foreign or unknown id is reported identically as not-found.
func (s *FaithService) SetCompletion(ctx context.Context, userID, stepID int64, completed bool) (*model.FaithStep, error) {
	step, err := s.repo.SetFaithStepCompletion(ctx, userID, stepID, completed)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: faith step not found", ErrNotFound)
		}
		return nil, err
	}
	return step, nil
}

func (s *FaithService) Delete(ctx context.Context, userID, stepID int64) error {
	deleted, err := s.repo.DeleteFaithStep(ctx, userID, stepID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: faith step not found", ErrNotFound)
	}
	return nil
}

func (s *FaithService) Stats(ctx context.Context, userID int64) (*model.FaithStats, error) {
	total, completed, recentDays, err := s.repo.GetFaithStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak := recentDays
	if streak > maxStreakDays {
		streak = maxStreakDays
	}

	return &model.FaithStats{
		Total:     total,
		Completed: completed,
		Streak:    streak,
	}, nil
}
