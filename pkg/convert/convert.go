// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package convert holds forgiving string-to-number parsers for query
// and path parameters, where a malformed value should act like an
// absent one. When the difference between "missing" and "garbage"
// matters, use strconv directly.
package convert

import "strconv"

// ToInt64 parses s as an int64, yielding 0 for anything unparseable.
func ToInt64(s string) int64 {
	if s == "" {
		return 0
	}

	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
