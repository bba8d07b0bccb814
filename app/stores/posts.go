package stores

import (
	"fmt"
	"sync"
	"time"

	"quill/app/models"
	"quill/app/storage"
)

// PostStore owns the blog post collection.
//
// Read operations return posts in store order, which is insertion order; any
// presentation ordering (the feed sorts by creation time, newest first) is
// layered on top by the caller, not guaranteed here.
type PostStore struct {
	medium storage.Medium
	mutex  sync.RWMutex
}

// NewPostStore creates a PostStore backed by the given medium.
func NewPostStore(medium storage.Medium) *PostStore {
	return &PostStore{medium: medium}
}

func (s *PostStore) loadPosts() ([]*models.Post, error) {
	var posts []*models.Post
	if _, err := s.medium.Read(storage.BlogsKey, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostStore) savePosts(posts []*models.Post) error {
	return s.medium.Write(storage.BlogsKey, posts)
}

// ListAll returns every post in store order.
func (s *PostStore) ListAll() ([]*models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.loadPosts()
}

// FindByID retrieves a post by ID.
func (s *PostStore) FindByID(id string) (*models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, ErrNotFound
}

// ListByAuthor returns every post authored by the given account, in store
// order.
func (s *PostStore) ListByAuthor(authorID string) ([]*models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}
	var matched []*models.Post
	for _, post := range posts {
		if post.AuthorID == authorID {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

// ListLikedBy returns every post liked by the given account, in store order.
func (s *PostStore) ListLikedBy(accountID string) ([]*models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}
	var matched []*models.Post
	for _, post := range posts {
		if post.LikedBy(accountID) {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

// Create appends a new post with fresh timestamps and an empty like set.
func (s *PostStore) Create(title, content, authorID, authorName string) (*models.Post, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
		Author:   authorName,
	}
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %v", err)
	}

	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}
	posts = append(posts, post)
	if err := s.savePosts(posts); err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces the title and content of an existing post and refreshes
// its update time. ID, author, creation time and likes are untouched.
func (s *PostStore) Update(id, title, content string) (*models.Post, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if post.ID != id {
			continue
		}
		post.Title = title
		post.Content = content
		post.UpdatedAt = time.Now()
		if err := post.Validate(); err != nil {
			return nil, fmt.Errorf("invalid post: %v", err)
		}
		if err := s.savePosts(posts); err != nil {
			return nil, err
		}
		return post, nil
	}
	return nil, ErrNotFound
}

// Delete removes the post with the given ID. Deleting an absent post is a
// no-op, not an error.
func (s *PostStore) Delete(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.loadPosts()
	if err != nil {
		return err
	}
	for i, post := range posts {
		if post.ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			return s.savePosts(posts)
		}
	}
	return nil
}

// Like records a like on a post. Liking twice, or liking an unknown post,
// is a no-op.
func (s *PostStore) Like(postID, accountID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.loadPosts()
	if err != nil {
		return err
	}
	for _, post := range posts {
		if post.ID == postID {
			post.AddLike(accountID)
			return s.savePosts(posts)
		}
	}
	return nil
}

// Unlike withdraws a like from a post. Unliking a post that was never
// liked, or an unknown post, is a no-op.
func (s *PostStore) Unlike(postID, accountID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.loadPosts()
	if err != nil {
		return err
	}
	for _, post := range posts {
		if post.ID == postID {
			post.RemoveLike(accountID)
			return s.savePosts(posts)
		}
	}
	return nil
}
