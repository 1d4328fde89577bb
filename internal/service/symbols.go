package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/apocalypse-study/backend/internal/db"
	"github.com/apocalypse-study/backend/internal/model"
)

const (
	defaultSymbolLimit = 200
	maxSymbolLimit     = 500
)

type SymbolRepo interface {
	ListSymbols(ctx context.Context, category, search string, limit int) ([]model.Symbol, error)
	GetSymbol(ctx context.Context, id int64) (*model.Symbol, error)
}

type SymbolService struct {
	repo SymbolRepo
}

func NewSymbolService(repo SymbolRepo) *SymbolService {
	return &SymbolService{repo: repo}
}

func (s *SymbolService) List(ctx context.Context, category, search string, limit int) ([]model.Symbol, error) {
	if limit <= 0 {
		limit = defaultSymbolLimit
	}
	if limit > maxSymbolLimit {
		limit = maxSymbolLimit
	}

	return s.repo.ListSymbols(ctx, strings.TrimSpace(category), strings.TrimSpace(search), limit)
}

func (s *SymbolService) Get(ctx context.Context, id int64) (*model.Symbol, error) {
	symbol, err := s.repo.GetSymbol(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: not found", ErrNotFound)
		}
		return nil, err
	}
	return symbol, nil
}
