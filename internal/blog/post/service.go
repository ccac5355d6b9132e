// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package post

import (
	"context"
	"log/slog"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/validate"
	"github.com/relatolabs/relato/pkg/excerpt"
	"github.com/relatolabs/relato/pkg/pagination"
	"github.com/relatolabs/relato/pkg/slice"
	"github.com/relatolabs/relato/pkg/slug"
)

// maxSearchTermLen bounds the free-text search input.
const maxSearchTermLen = 100

type Service struct {
	repo   Repository
	logger *slog.Logger

	// extendedSearch widens the free-text predicate to related names.
	extendedSearch bool
}

func NewService(repo Repository, logger *slog.Logger, extendedSearch bool) *Service {
	return &Service{
		repo:           repo,
		logger:         logger,
		extendedSearch: extendedSearch,
	}
}

// Page bundles one page of posts with its total row count.
type Page struct {
	Posts []*Post
	Total int
}

// List returns the unfiltered public listing, newest first.
func (service *Service) List(context context.Context, params pagination.Params) (*Page, error) {
	return service.list(context, Filter{}, params)
}

/*
Search runs the free-text listing with optional category/tag/author narrowing.

Parameters:
  - term: Required search term, matched case-insensitively as a substring.
  - categorySlug, tagSlug: Optional slug filters, resolved before the query.
  - authorID: Optional author account id.
  - params: Pagination window.

Returns:
  - *Page: Matching posts plus total count.
  - error: Validation failure, NotFound for a bad slug/author, or store errors.
*/
func (service *Service) Search(context context.Context, term, categorySlug, tagSlug, authorID string, params pagination.Params) (*Page, error) {
	v := &validate.Validator{}
	v.Required("q", term).MaxLen("q", term, maxSearchTermLen)
	if err := v.Err(); err != nil {
		return nil, err
	}

	filter := Filter{Query: term, Scope: service.searchScope()}

	if categorySlug != "" {
		categoryID, err := service.resolveCategory(context, categorySlug)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = categoryID
	}

	if tagSlug != "" {
		tagID, err := service.resolveTag(context, tagSlug)
		if err != nil {
			return nil, err
		}
		filter.TagID = tagID
	}

	if authorID != "" {
		if err := service.checkAuthor(context, authorID); err != nil {
			return nil, err
		}
		filter.AuthorID = authorID
	}

	return service.list(context, filter, params)
}

// ListByCategory scopes the listing to one category resolved by slug.
func (service *Service) ListByCategory(context context.Context, slug string, params pagination.Params) (*Page, error) {
	categoryID, err := service.resolveCategory(context, slug)
	if err != nil {
		return nil, err
	}
	return service.list(context, Filter{CategoryID: categoryID}, params)
}

// ListByTag scopes the listing to posts carrying the tag resolved by slug.
func (service *Service) ListByTag(context context.Context, slug string, params pagination.Params) (*Page, error) {
	tagID, err := service.resolveTag(context, slug)
	if err != nil {
		return nil, err
	}
	return service.list(context, Filter{TagID: tagID}, params)
}

// ListByAuthor scopes the listing to one author's posts.
func (service *Service) ListByAuthor(context context.Context, authorID string, params pagination.Params) (*Page, error) {
	if err := service.checkAuthor(context, authorID); err != nil {
		return nil, err
	}
	return service.list(context, Filter{AuthorID: authorID}, params)
}

// GetBySlug returns one post with its full content and relationships.
func (service *Service) GetBySlug(context context.Context, slug string) (*Post, error) {
	found, err := service.repo.GetBySlug(context, slug)
	if err != nil {
		return nil, notFoundAs(err, "Post")
	}

	found.Excerpt = excerpt.Preview(found.Content)
	return found, nil
}

// summaryListLen is the length of each list in the front-page overview.
const summaryListLen = 5

// Summary assembles the front-page overview: the newest posts, the most
// viewed posts, and the newest posts of every category.
func (service *Service) Summary(context context.Context) (*Overview, error) {
	latest, err := service.list(context, Filter{}, pagination.Params{Page: 1, PerPage: summaryListLen})
	if err != nil {
		return nil, err
	}

	mostViewed, err := service.repo.ListMostViewed(context, summaryListLen)
	if err != nil {
		return nil, err
	}
	previewPosts(mostViewed)

	recent, err := service.repo.ListRecentByCategory(context, summaryListLen)
	if err != nil {
		return nil, err
	}
	previewPosts(recent)

	return &Overview{
		LatestPosts:     latest.Posts,
		MostViewedPosts: mostViewed,
		PostsByCategory: groupByCategory(recent),
	}, nil
}

// groupByCategory splits an ordered post list into per-category groups,
// preserving the order categories first appear in.
func groupByCategory(posts []*Post) []CategoryGroup {
	byCategory := make(map[int64][]*Post)
	order := make([]Category, 0)

	for _, p := range posts {
		if _, seen := byCategory[p.Category.ID]; !seen {
			order = append(order, p.Category)
		}
		byCategory[p.Category.ID] = append(byCategory[p.Category.ID], p)
	}

	return slice.Map(order, func(c Category) CategoryGroup {
		return CategoryGroup{Category: c, Posts: byCategory[c.ID]}
	})
}

// list runs the shared pipeline: query, then derive listing excerpts.
func (service *Service) list(context context.Context, filter Filter, params pagination.Params) (*Page, error) {
	posts, total, err := service.repo.List(context, filter, params.PerPage, params.Offset())
	if err != nil {
		return nil, err
	}

	previewPosts(posts)
	return &Page{Posts: posts, Total: total}, nil
}

// previewPosts swaps full bodies for listing excerpts in place.
func previewPosts(posts []*Post) {
	for _, p := range posts {
		p.Excerpt = excerpt.Preview(p.Content)
		p.Content = ""
	}
}

func (service *Service) searchScope() SearchScope {
	if service.extendedSearch {
		return ScopeExtended
	}
	return ScopeBasic
}

// resolveCategory maps a category slug to its id, rejecting malformed slugs
// before touching the store.
func (service *Service) resolveCategory(context context.Context, categorySlug string) (int64, error) {
	if !slug.IsValid(categorySlug) {
		return 0, apperr.NotFound("Category")
	}

	categoryID, err := service.repo.GetCategoryIDBySlug(context, categorySlug)
	if err != nil {
		return 0, notFoundAs(err, "Category")
	}
	return categoryID, nil
}

// resolveTag maps a tag slug to its id, rejecting malformed slugs before
// touching the store.
func (service *Service) resolveTag(context context.Context, tagSlug string) (int64, error) {
	if !slug.IsValid(tagSlug) {
		return 0, apperr.NotFound("Tag")
	}

	tagID, err := service.repo.GetTagIDBySlug(context, tagSlug)
	if err != nil {
		return 0, notFoundAs(err, "Tag")
	}
	return tagID, nil
}

func (service *Service) checkAuthor(context context.Context, authorID string) error {
	exists, err := service.repo.AuthorExists(context, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("User")
	}
	return nil
}

// notFoundAs rebrands a generic row-missing error with the entity name so
// clients can tell which reference was invalid.
func notFoundAs(err error, entity string) error {
	if appError := apperr.As(err); appError != nil && appError.HTTPStatus == 404 {
		return apperr.NotFound(entity)
	}
	return err
}
