// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package category

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

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s,
		       (SELECT COUNT(*) FROM %s p WHERE p.%s = c.%s AND p.%s = TRUE) AS post_count
		FROM %s c
		ORDER BY c.%s ASC
	`,
		schema.BlogCategory.ID, schema.BlogCategory.Name, schema.BlogCategory.Slug, schema.BlogCategory.Description,
		schema.BlogPost.Table, schema.BlogPost.CategoryID, schema.BlogCategory.ID, schema.BlogPost.IsPublished,
		schema.BlogCategory.Table,
		schema.BlogCategory.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.PostCount); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s,
		       (SELECT COUNT(*) FROM %s p WHERE p.%s = c.%s AND p.%s = TRUE) AS post_count
		FROM %s c
		WHERE c.%s = $1
	`,
		schema.BlogCategory.ID, schema.BlogCategory.Name, schema.BlogCategory.Slug, schema.BlogCategory.Description,
		schema.BlogPost.Table, schema.BlogPost.CategoryID, schema.BlogCategory.ID, schema.BlogPost.IsPublished,
		schema.BlogCategory.Table,
		schema.BlogCategory.Slug,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.PostCount)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_slug")
	}

	return c, nil
}
