// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/relatolabs/relato/internal/platform/database/schema"
	"github.com/relatolabs/relato/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetMenuByID(context context.Context, id int64) (*Menu, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.NavMenu.ID, schema.NavMenu.Name, schema.NavMenu.CreatedAt, schema.NavMenu.UpdatedAt,
		schema.NavMenu.Table, schema.NavMenu.ID)

	m := &Menu{}
	err := repository.db.QueryRow(context, query, id).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_menu_by_id")
	}

	return m, nil
}

func (repository *PostgresRepository) ListItems(context context.Context, menuID int64, activeOnly bool) ([]*MenuItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.NavMenuItem.ID, schema.NavMenuItem.MenuID, schema.NavMenuItem.ParentID,
		schema.NavMenuItem.Label, schema.NavMenuItem.Icon, schema.NavMenuItem.Route,
		schema.NavMenuItem.URL, schema.NavMenuItem.IsExternal, schema.NavMenuItem.IsActive,
		schema.NavMenuItem.Position,
		schema.NavMenuItem.Table, schema.NavMenuItem.MenuID,
	)

	if activeOnly {
		query += fmt.Sprintf(" AND %s = TRUE", schema.NavMenuItem.IsActive)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", schema.NavMenuItem.Position, schema.NavMenuItem.ID)

	rows, err := repository.db.Query(context, query, menuID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_menu_items")
	}
	defer rows.Close()

	items := make([]*MenuItem, 0)
	for rows.Next() {
		item := &MenuItem{}
		err := rows.Scan(
			&item.ID, &item.MenuID, &item.ParentID,
			&item.Label, &item.Icon, &item.Route,
			&item.URL, &item.IsExternal, &item.IsActive,
			&item.Position,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_menu_item")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_menu_items")
	}

	return items, nil
}
