// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

/*
Package post provides the PostgreSQL implementation for the listing pipeline.

It leans on Postgres features to keep every listing a single round-trip:
  - Window Functions: COUNT(*) OVER() yields the total matching rows without
    a second COUNT query.
  - JSON Aggregation: A sub-query folds each post's tags into a JSON array,
    avoiding N+1 tag lookups.
  - ILIKE: Case-insensitive substring search over title and content.
*/
package post

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
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

// selectColumns is the shared projection for hydrated post rows.
func selectColumns() string {
	return fmt.Sprintf(`
			p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
			u.%s, u.%s,
			c.%s, c.%s, c.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', t.%s, 'name', t.%s, 'slug', t.%s) ORDER BY t.%s)
				FROM %s t
				JOIN %s pt ON t.%s = pt.%s
				WHERE pt.%s = p.%s
			), '[]') AS tags,
			(SELECT COUNT(*) FROM %s cm WHERE cm.%s = p.%s AND cm.%s = TRUE) AS comment_count`,
		schema.BlogPost.ID, schema.BlogPost.Title, schema.BlogPost.Slug, schema.BlogPost.Content,
		schema.BlogPost.ImageURL, schema.BlogPost.ViewCount, schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.Name,
		schema.BlogCategory.ID, schema.BlogCategory.Name, schema.BlogCategory.Slug,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.Slug, schema.BlogTag.Name,
		schema.BlogTag.Table,
		schema.PostTag.Table, schema.BlogTag.ID, schema.PostTag.TagID,
		schema.PostTag.PostID, schema.BlogPost.ID,
		schema.BlogComment.Table, schema.BlogComment.PostID, schema.BlogPost.ID, schema.BlogComment.IsApproved,
	)
}

// fromClause joins posts to their author and category.
func fromClause() string {
	return fmt.Sprintf(`
		FROM %s p
		JOIN %s u ON u.%s = p.%s
		JOIN %s c ON c.%s = p.%s`,
		schema.BlogPost.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.BlogPost.AuthorID,
		schema.BlogCategory.Table, schema.BlogCategory.ID, schema.BlogPost.CategoryID,
	)
}

/*
List returns a filtered, paginated slice of published posts and the total count.

Description: The WHERE clause is assembled dynamically from the active
filters; every predicate is parameterized. The newest-created-first order is
the only order the public API exposes, with id as a deterministic tiebreak.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString("SELECT ")
	queryBuilder.WriteString(selectColumns())
	queryBuilder.WriteString(",\n\t\t\tCOUNT(*) OVER() AS total_count")
	queryBuilder.WriteString(fromClause())
	queryBuilder.WriteString(fmt.Sprintf(" WHERE p.%s = TRUE", schema.BlogPost.IsPublished))

	// Search Term Filtering
	if filter.Query != "" {
		pattern := "%" + escapeLike(filter.Query) + "%"

		if filter.Scope == ScopeExtended {
			queryBuilder.WriteString(fmt.Sprintf(` AND (p.%s ILIKE $%d OR p.%s ILIKE $%d OR c.%s ILIKE $%d OR u.%s ILIKE $%d
				OR EXISTS (
					SELECT 1 FROM %s t
					JOIN %s pt ON t.%s = pt.%s
					WHERE pt.%s = p.%s AND t.%s ILIKE $%d
				))`,
				schema.BlogPost.Title, argID, schema.BlogPost.Content, argID,
				schema.BlogCategory.Name, argID, schema.UserAccount.Name, argID,
				schema.BlogTag.Table,
				schema.PostTag.Table, schema.BlogTag.ID, schema.PostTag.TagID,
				schema.PostTag.PostID, schema.BlogPost.ID, schema.BlogTag.Name, argID,
			))
		} else {
			queryBuilder.WriteString(fmt.Sprintf(" AND (p.%s ILIKE $%d OR p.%s ILIKE $%d)",
				schema.BlogPost.Title, argID, schema.BlogPost.Content, argID))
		}

		args = append(args, pattern)
		argID++
	}

	// Category Filtering
	if filter.CategoryID != 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", schema.BlogPost.CategoryID, argID))
		args = append(args, filter.CategoryID)
		argID++
	}

	// Tag Filtering (existential match on the junction table)
	if filter.TagID != 0 {
		queryBuilder.WriteString(fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s pt WHERE pt.%s = p.%s AND pt.%s = $%d)`,
			schema.PostTag.Table, schema.PostTag.PostID, schema.BlogPost.ID, schema.PostTag.TagID, argID))
		args = append(args, filter.TagID)
		argID++
	}

	// Author Filtering
	if filter.AuthorID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", schema.BlogPost.AuthorID, argID))
		args = append(args, filter.AuthorID)
		argID++
	}

	// Sorting: newest first, id as tiebreak
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY p.%s DESC, p.%s DESC", schema.BlogPost.CreatedAt, schema.BlogPost.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	totalCount := 0

	for rows.Next() {
		p := &Post{}
		var tagsJSON []byte

		err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content,
			&p.ImageURL, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Name,
			&p.Category.ID, &p.Category.Name, &p.Category.Slug,
			&tagsJSON,
			&p.CommentCount,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}

		if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
			return nil, 0, dberr.Wrap(err, "decode_post_tags")
		}

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}

	return posts, totalCount, nil
}

// ListMostViewed returns the published posts with the highest view counters.
func (repository *PostgresRepository) ListMostViewed(context context.Context, limit int) ([]*Post, error) {
	query := "SELECT " + selectColumns() + fromClause() +
		fmt.Sprintf(" WHERE p.%s = TRUE ORDER BY p.%s DESC, p.%s DESC LIMIT $1",
			schema.BlogPost.IsPublished, schema.BlogPost.ViewCount, schema.BlogPost.ID)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_most_viewed_posts")
	}
	defer rows.Close()

	return collectPosts(rows)
}

/*
ListRecentByCategory returns, for every category, its most recent published
posts, up to perCategory each.

Description: A ROW_NUMBER() window partitioned by category ranks posts by
recency; the outer query keeps the top perCategory of each partition. Rows
come back ordered by category name, then newest first, so callers can group
them with a single pass.
*/
func (repository *PostgresRepository) ListRecentByCategory(context context.Context, perCategory int) ([]*Post, error) {
	query := fmt.Sprintf(`
		WITH ranked AS (
			SELECT %s AS post_id,
				ROW_NUMBER() OVER (PARTITION BY %s ORDER BY %s DESC, %s DESC) AS category_rank
			FROM %s
			WHERE %s = TRUE
		)
		SELECT `+selectColumns()+fromClause()+`
		JOIN ranked r ON r.post_id = p.%s
		WHERE r.category_rank <= $1
		ORDER BY c.%s ASC, p.%s DESC, p.%s DESC`,
		schema.BlogPost.ID,
		schema.BlogPost.CategoryID, schema.BlogPost.CreatedAt, schema.BlogPost.ID,
		schema.BlogPost.Table,
		schema.BlogPost.IsPublished,
		schema.BlogPost.ID,
		schema.BlogCategory.Name, schema.BlogPost.CreatedAt, schema.BlogPost.ID,
	)

	rows, err := repository.db.Query(context, query, perCategory)
	if err != nil {
		return nil, dberr.Wrap(err, "list_recent_by_category")
	}
	defer rows.Close()

	return collectPosts(rows)
}

// collectPosts scans hydrated post rows produced by selectColumns().
func collectPosts(rows pgx.Rows) ([]*Post, error) {
	posts := make([]*Post, 0)

	for rows.Next() {
		p := &Post{}
		var tagsJSON []byte

		err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content,
			&p.ImageURL, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Name,
			&p.Category.ID, &p.Category.Name, &p.Category.Slug,
			&tagsJSON,
			&p.CommentCount,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}

		if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
			return nil, dberr.Wrap(err, "decode_post_tags")
		}

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "collect_posts")
	}

	return posts, nil
}

// GetBySlug returns one published post with full relationships.
func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Post, error) {
	query := "SELECT " + selectColumns() + fromClause() +
		fmt.Sprintf(" WHERE p.%s = TRUE AND p.%s = $1", schema.BlogPost.IsPublished, schema.BlogPost.Slug)

	p := &Post{}
	var tagsJSON []byte

	err := repository.db.QueryRow(context, query, slug).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content,
		&p.ImageURL, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Name,
		&p.Category.ID, &p.Category.Name, &p.Category.Slug,
		&tagsJSON,
		&p.CommentCount,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_post_by_slug")
	}

	if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
		return nil, dberr.Wrap(err, "decode_post_tags")
	}

	return p, nil
}

func (repository *PostgresRepository) GetCategoryIDBySlug(context context.Context, slug string) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.BlogCategory.ID, schema.BlogCategory.Table, schema.BlogCategory.Slug)

	var id int64
	if err := repository.db.QueryRow(context, query, slug).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "get_category_id_by_slug")
	}
	return id, nil
}

func (repository *PostgresRepository) GetTagIDBySlug(context context.Context, slug string) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.BlogTag.ID, schema.BlogTag.Table, schema.BlogTag.Slug)

	var id int64
	if err := repository.db.QueryRow(context, query, slug).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "get_tag_id_by_slug")
	}
	return id, nil
}

func (repository *PostgresRepository) AuthorExists(context context.Context, authorID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s IS NULL)`,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.DeletedAt)

	var exists bool
	if err := repository.db.QueryRow(context, query, authorID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "author_exists")
	}
	return exists, nil
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
