// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package tag

import "context"

type Repository interface {
	ListTags(context context.Context) ([]*Tag, error)
	GetTagBySlug(context context.Context, slug string) (*Tag, error)
}
