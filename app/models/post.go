package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("createdAt cannot be zero")
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return errors.New("updatedAt cannot precede createdAt")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
}

// LikedBy reports whether the given account has liked the post.
func (p *Post) LikedBy(accountID string) bool {
	for _, id := range p.Likes {
		if id == accountID {
			return true
		}
	}
	return false
}

// AddLike records a like from the given account. Liking a post twice
// leaves the like set unchanged.
func (p *Post) AddLike(accountID string) {
	if p.LikedBy(accountID) {
		return
	}
	p.Likes = append(p.Likes, accountID)
}

// RemoveLike withdraws a like from the given account, if present.
func (p *Post) RemoveLike(accountID string) {
	for i, id := range p.Likes {
		if id == accountID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return
		}
	}
}
