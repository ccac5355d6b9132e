// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package tag

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

func (repository *PostgresRepository) ListTags(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s,
		       (SELECT COUNT(*)
		        FROM %s pt
		        JOIN %s p ON p.%s = pt.%s
		        WHERE pt.%s = t.%s AND p.%s = TRUE) AS post_count
		FROM %s t
		ORDER BY t.%s ASC
	`,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.Slug,
		schema.PostTag.Table,
		schema.BlogPost.Table, schema.BlogPost.ID, schema.PostTag.PostID,
		schema.PostTag.TagID, schema.BlogTag.ID, schema.BlogPost.IsPublished,
		schema.BlogTag.Table,
		schema.BlogTag.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.PostCount); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}

	return tags, nil
}

func (repository *PostgresRepository) GetTagBySlug(context context.Context, slug string) (*Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s,
		       (SELECT COUNT(*)
		        FROM %s pt
		        JOIN %s p ON p.%s = pt.%s
		        WHERE pt.%s = t.%s AND p.%s = TRUE) AS post_count
		FROM %s t
		WHERE t.%s = $1
	`,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.Slug,
		schema.PostTag.Table,
		schema.BlogPost.Table, schema.BlogPost.ID, schema.PostTag.PostID,
		schema.PostTag.TagID, schema.BlogTag.ID, schema.BlogPost.IsPublished,
		schema.BlogTag.Table,
		schema.BlogTag.Slug,
	)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, slug).Scan(&t.ID, &t.Name, &t.Slug, &t.PostCount)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_slug")
	}

	return t, nil
}
