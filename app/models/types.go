package models

import "time"

// Account represents a registered user identity.
//
// Passwords are stored and compared in plain text: sign-in is a pure
// equality check against the persisted record, and the persisted layout has
// no room for a hash. This is a deliberate property of the system, not an
// oversight.
type Account struct {
	ID       string `json:"id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Post represents a single authored blog entry.
//
// Author is a denormalized copy of the author's username taken at creation
// time. Likes holds the IDs of accounts that liked the post and never
// contains duplicates.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	AuthorID  string    `json:"authorId" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
	Likes     []string  `json:"likes" validate:"-"`
}
