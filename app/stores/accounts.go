// Package stores implements the account and content stores on top of a
// storage.Medium. Every mutation re-reads the affected collection, applies
// the change, and rewrites the collection whole: last writer wins at
// collection granularity.
package stores

import (
	"fmt"
	"sync"

	"quill/app/models"
	"quill/app/storage"
)

// AccountStore owns the registered accounts and the signed-in session
// pointer.
type AccountStore struct {
	medium storage.Medium
	mutex  sync.RWMutex
}

// NewAccountStore creates an AccountStore backed by the given medium.
func NewAccountStore(medium storage.Medium) *AccountStore {
	return &AccountStore{medium: medium}
}

func (s *AccountStore) loadAccounts() ([]*models.Account, error) {
	var accounts []*models.Account
	if _, err := s.medium.Read(storage.UsersKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Register creates a new account and signs it in. It fails with
// ErrEmailTaken when the email is already registered, leaving the stored
// collection untouched.
func (s *AccountStore) Register(username, email, password string) (*models.Account, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	for _, existing := range accounts {
		if existing.Email == email {
			return nil, ErrEmailTaken
		}
	}

	account := &models.Account{
		Username: username,
		Email:    email,
		Password: password,
	}
	account.BeforeCreate()
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("invalid account: %v", err)
	}

	accounts = append(accounts, account)
	if err := s.medium.Write(storage.UsersKey, accounts); err != nil {
		return nil, err
	}
	if err := s.medium.Write(storage.CurrentUserKey, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login signs in the account matching both email and password exactly.
// Any mismatch yields ErrInvalidCredentials; the result carries no hint of
// which field was wrong.
func (s *AccountStore) Login(email, password string) (*models.Account, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if account.Email == email && account.Password == password {
			if err := s.medium.Write(storage.CurrentUserKey, account); err != nil {
				return nil, err
			}
			return account, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Logout clears the session pointer. Logging out while signed out is a
// no-op.
func (s *AccountStore) Logout() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.medium.Delete(storage.CurrentUserKey)
}

// Current returns the signed-in account, or nil when signed out. The
// session pointer holds a denormalized copy, so the ID is re-checked
// against the live collection and the live record is returned; a pointer to
// an account that no longer exists reads as signed out.
func (s *AccountStore) Current() (*models.Account, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var pointer models.Account
	found, err := s.medium.Read(storage.CurrentUserKey, &pointer)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		if account.ID == pointer.ID {
			return account, nil
		}
	}
	return nil, nil
}

// List returns every registered account in store order.
func (s *AccountStore) List() ([]*models.Account, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.loadAccounts()
}
