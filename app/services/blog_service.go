package services

import (
	"errors"
	"fmt"
	"sort"

	"quill/app/logging"
	"quill/app/models"
	"quill/app/stores"
)

var (
	// ErrSignedOut is returned when an operation requires a signed-in
	// account and there is none.
	ErrSignedOut = errors.New("not signed in")

	// ErrNotAuthor is returned when an account tries to edit or delete a
	// post it did not author.
	ErrNotAuthor = errors.New("only the author may modify this post")
)

// BlogService handles business logic on top of the account and post stores:
// session requirements, author-only mutation, and the content minimums the
// stores themselves do not enforce.
type BlogService struct {
	accounts *stores.AccountStore
	posts    *stores.PostStore
	log      logging.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(accounts *stores.AccountStore, posts *stores.PostStore, log logging.Logger) *BlogService {
	return &BlogService{
		accounts: accounts,
		posts:    posts,
		log:      log,
	}
}

// Register creates a new account and signs it in.
func (s *BlogService) Register(username, email, password string) (*models.Account, error) {
	account, err := s.accounts.Register(username, email, password)
	if err != nil {
		return nil, err
	}
	s.log.Info("account registered", "id", account.ID, "username", account.Username)
	return account, nil
}

// Login signs in an existing account.
func (s *BlogService) Login(email, password string) (*models.Account, error) {
	account, err := s.accounts.Login(email, password)
	if err != nil {
		return nil, err
	}
	s.log.Info("account signed in", "id", account.ID)
	return account, nil
}

// Logout clears the current session.
func (s *BlogService) Logout() error {
	return s.accounts.Logout()
}

// CurrentAccount returns the signed-in account, or nil when signed out.
func (s *BlogService) CurrentAccount() (*models.Account, error) {
	return s.accounts.Current()
}

// requireAccount resolves the current session or fails with ErrSignedOut.
func (s *BlogService) requireAccount() (*models.Account, error) {
	account, err := s.accounts.Current()
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrSignedOut
	}
	return account, nil
}

// CreatePost publishes a new post authored by the signed-in account.
func (s *BlogService) CreatePost(title, content string) (*models.Post, error) {
	account, err := s.requireAccount()
	if err != nil {
		return nil, err
	}
	if err := validateContent(title, content); err != nil {
		return nil, err
	}

	post, err := s.posts.Create(title, content, account.ID, account.Username)
	if err != nil {
		return nil, err
	}
	s.log.Info("post created", "id", post.ID, "author", post.AuthorID)
	return post, nil
}

// UpdatePost edits a post's title and content. Only the author may edit.
func (s *BlogService) UpdatePost(id, title, content string) (*models.Post, error) {
	account, err := s.requireAccount()
	if err != nil {
		return nil, err
	}
	if err := validateContent(title, content); err != nil {
		return nil, err
	}

	existing, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != account.ID {
		return nil, ErrNotAuthor
	}

	post, err := s.posts.Update(id, title, content)
	if err != nil {
		return nil, err
	}
	s.log.Info("post updated", "id", post.ID)
	return post, nil
}

// DeletePost removes a post. Only the author may delete; deleting a post
// that no longer exists is a no-op.
func (s *BlogService) DeletePost(id string) error {
	account, err := s.requireAccount()
	if err != nil {
		return err
	}

	existing, err := s.posts.FindByID(id)
	if errors.Is(err, stores.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.AuthorID != account.ID {
		return ErrNotAuthor
	}

	if err := s.posts.Delete(id); err != nil {
		return err
	}
	s.log.Info("post deleted", "id", id)
	return nil
}

// Like records a like on a post for the signed-in account.
func (s *BlogService) Like(postID string) error {
	account, err := s.requireAccount()
	if err != nil {
		return err
	}
	return s.posts.Like(postID, account.ID)
}

// Unlike withdraws the signed-in account's like from a post.
func (s *BlogService) Unlike(postID string) error {
	account, err := s.requireAccount()
	if err != nil {
		return err
	}
	return s.posts.Unlike(postID, account.ID)
}

// GetPost retrieves a single post by ID.
func (s *BlogService) GetPost(id string) (*models.Post, error) {
	return s.posts.FindByID(id)
}

// Feed returns every post, newest first. The stores keep insertion order;
// the feed ordering is applied here.
func (s *BlogService) Feed() ([]*models.Post, error) {
	posts, err := s.posts.ListAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// MyPosts returns the signed-in account's posts in store order.
func (s *BlogService) MyPosts() ([]*models.Post, error) {
	account, err := s.requireAccount()
	if err != nil {
		return nil, err
	}
	return s.posts.ListByAuthor(account.ID)
}

// LikedPosts returns the posts the signed-in account has liked.
func (s *BlogService) LikedPosts() ([]*models.Post, error) {
	account, err := s.requireAccount()
	if err != nil {
		return nil, err
	}
	return s.posts.ListLikedBy(account.ID)
}

// validateContent enforces the presentation-tier minimum lengths on top of
// the store's non-empty requirement.
func validateContent(title, content string) error {
	if len(title) < 5 {
		return fmt.Errorf("title must be at least 5 characters")
	}
	if len(content) < 20 {
		return fmt.Errorf("content must be at least 20 characters")
	}
	return nil
}
