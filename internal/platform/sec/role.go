// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package sec

// UserRole is the value space of the account role column and the JWT role
// claim. Registration assigns RoleMember; the rest are set editorially.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleAuthor UserRole = "author"
	RoleMember UserRole = "member"
)
