package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/apocalypse-study/backend/internal/model"
)

type fakeFaithRepo struct {
	steps      []model.FaithStep
	total      int
	completed  int
	recentDays int
}

func (f *fakeFaithRepo) ListFaithSteps(ctx context.Context, userID int64, limit int) ([]model.FaithStep, error) {
	return f.steps, nil
}

func (f *fakeFaithRepo) InsertFaithStep(ctx context.Context, userID int64, title string, passage, meditation *string, step int, source string) (*model.FaithStep, error) {
	created := model.FaithStep{
		ID:         int64(len(f.steps) + 1),
		Title:      title,
		Passage:    passage,
		Meditation: meditation,
		Step:       step,
		Source:     source,
	}
	f.steps = append(f.steps, created)
	return &created, nil
}

func (f *fakeFaithRepo) SetFaithStepCompletion(ctx context.Context, userID, stepID int64, completed bool) (*model.FaithStep, error) {
	for i := range f.steps {
		if f.steps[i].ID == stepID {
			f.steps[i].Completed = completed
			return &f.steps[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeFaithRepo) DeleteFaithStep(ctx context.Context, userID, stepID int64) (bool, error) {
	for i := range f.steps {
		if f.steps[i].ID == stepID {
			f.steps = append(f.steps[:i], f.steps[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFaithRepo) GetFaithStats(ctx context.Context, userID int64) (int, int, int, error) {
	return f.total, f.completed, f.recentDays, nil
}

func TestFaithCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  model.FaithStepCreateRequest
	}{
		{name: "missing-title", req: model.FaithStepCreateRequest{Step: 1}},
		{name: "missing-step", req: model.FaithStepCreateRequest{Title: "Trust"}},
		{name: "blank-title", req: model.FaithStepCreateRequest{Title: "   ", Step: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeFaithRepo{}
			svc := NewFaithService(repo)

			_, err := svc.Create(context.Background(), 1, tt.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.steps) != 0 {
				t.Fatal("invalid input must not persist a row")
			}
		})
	}
}

func TestFaithCreateDefaultsSource(t *testing.T) {
	repo := &fakeFaithRepo{}
	svc := NewFaithService(repo)

	step, err := svc.Create(context.Background(), 1, model.FaithStepCreateRequest{Title: "Trust", Step: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if step.Source != "custom" {
		t.Fatalf("source = %q, want custom", step.Source)
	}
}

func TestFaithOwnershipMismatchIsNotFound(t *testing.T) {
	repo := &fakeFaithRepo{}
	svc := NewFaithService(repo)
	ctx := context.Background()

	if _, err := svc.SetCompletion(ctx, 1, 99, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 1, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestFaithStatsStreakClamped(t *testing.T) {
	tests := []struct {
		name       string
		recentDays int
		want       int
	}{
		{name: "no-activity", recentDays: 0, want: 0},
		{name: "mid-week", recentDays: 3, want: 3},
		{name: "full-week", recentDays: 7, want: 7},
		{name: "over-window", recentDays: 12, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeFaithRepo{total: 20, completed: 5, recentDays: tt.recentDays}
			svc := NewFaithService(repo)

			stats, err := svc.Stats(context.Background(), 1)
			if err != nil {
				t.Fatalf("stats: %v", err)
			}
			if stats.Streak != tt.want {
				t.Fatalf("streak = %d, want %d", stats.Streak, tt.want)
			}
			if stats.Streak < 0 || stats.Streak > 7 {
				t.Fatalf("streak out of [0,7]: %d", stats.Streak)
			}
			if stats.Total != 20 || stats.Completed != 5 {
				t.Fatalf("unexpected totals: %+v", stats)
			}
		})
	}
}
