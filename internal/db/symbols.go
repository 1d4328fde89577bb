package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/apocalypse-study/backend/internal/model"
)

const symbolColumns = `id, title, reference, category, image_url, meaning, context, application`

func (db *Postgres) ListSymbols(ctx context.Context, category, search string, limit int) ([]model.Symbol, error) {
	var conds []string
	var args []any

	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		idx := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE $%d OR reference ILIKE $%d OR meaning ILIKE $%d OR context ILIKE $%d OR application ILIKE $%d)",
			idx, idx, idx, idx, idx,
		))
	}

	query := `SELECT ` + symbolColumns + ` FROM apocalyptic_symbols`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d", len(args))

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Symbol
	for rows.Next() {
		var s model.Symbol
		if err := rows.Scan(&s.ID, &s.Title, &s.Reference, &s.Category, &s.ImageURL, &s.Meaning, &s.Context, &s.Application); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Symbol{}
	}
	return list, nil
}

func (db *Postgres) GetSymbol(ctx context.Context, id int64) (*model.Symbol, error) {
	query := `SELECT ` + symbolColumns + ` FROM apocalyptic_symbols WHERE id = $1 LIMIT 1`
	var s model.Symbol
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Reference, &s.Category, &s.ImageURL, &s.Meaning, &s.Context, &s.Application,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
