package entity

import "time"

// User is a registered account. Password is stored exactly as submitted.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewUser struct {
	Name     string
	Email    string
	Password string
}

// PatchUser carries a partial update; nil fields are left untouched.
type PatchUser struct {
	ID       int64
	Name     *string
	Email    *string
	Password *string
}

type UserListFilter struct {
	Search string
	Limit  int32
	Offset int64
}
