package service

import (
	"context"
	"sync"
	"time"

	"github.com/foodygo/identity-server/internal/model"
)

// memStore is an in-memory AccountStore and CustomerStore with the same
// uniqueness and compare-and-set behaviour as the postgres repositories.
type memStore struct {
	mu               sync.Mutex
	nextID           int64
	accounts         map[int64]model.Account
	deletedCustomers map[int64]bool
	now              func() time.Time
}

var (
	_ model.AccountStore  = (*memStore)(nil)
	_ model.CustomerStore = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		accounts:         make(map[int64]model.Account),
		deletedCustomers: make(map[int64]bool),
		now:              time.Now,
	}
}

func (s *memStore) find(match func(model.Account) bool) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if match(a) {
			return a, nil
		}
	}
	return model.Account{}, model.ErrNotFound
}

func (s *memStore) FindByEmail(_ context.Context, email string) (model.Account, error) {
	return s.find(func(a model.Account) bool { return a.Email == email })
}

func (s *memStore) FindByPhone(_ context.Context, phone string) (model.Account, error) {
	return s.find(func(a model.Account) bool { return !a.Deleted && a.Phone != nil && *a.Phone == phone })
}

func (s *memStore) FindByID(_ context.Context, id int64) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return a, nil
}

// conflicts mirrors the schema: email is unique across all rows, phone only
// among rows that are not deleted.
func (s *memStore) conflicts(a model.Account, deleted bool) bool {
	for id, other := range s.accounts {
		if id == a.ID {
			continue
		}
		if other.Email == a.Email {
			return true
		}
		if !deleted && !other.Deleted && a.Phone != nil && other.Phone != nil && *a.Phone == *other.Phone {
			return true
		}
	}
	return false
}

func (s *memStore) Save(_ context.Context, a model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := a.Deleted
	if stored, ok := s.accounts[a.ID]; ok {
		deleted = stored.Deleted
	}
	if s.conflicts(a, deleted) {
		return model.Account{}, model.ErrConflict
	}

	now := s.now()
	if a.ID == 0 {
		s.nextID++
		a.ID = s.nextID
		a.CreatedAt = now
		a.UpdatedAt = now
		s.accounts[a.ID] = a
		return a, nil
	}

	stored, ok := s.accounts[a.ID]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	stored.Email = a.Email
	stored.Phone = a.Phone
	stored.FullName = a.FullName
	stored.AvatarURL = a.AvatarURL
	stored.PasswordHash = a.PasswordHash
	stored.RoleID = a.RoleID
	stored.UpdatedAt = now
	s.accounts[a.ID] = stored
	return stored, nil
}

func (s *memStore) CountActive(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, a := range s.accounts {
		if a.Usable() {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CountRegisteredSince(_ context.Context, since time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, a := range s.accounts {
		if !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *memStore) StoreSession(_ context.Context, id int64, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return model.ErrNotFound
	}
	a.AccessToken = &accessToken
	a.RefreshToken = &refreshToken
	s.accounts[id] = a
	return nil
}

func (s *memStore) RotateAccess(_ context.Context, id int64, presentedRefresh, accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok || a.RefreshToken == nil || *a.RefreshToken != presentedRefresh {
		return model.ErrNotFound
	}
	a.AccessToken = &accessToken
	s.accounts[id] = a
	return nil
}

func (s *memStore) ClearSession(_ context.Context, id int64) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	a.AccessToken = nil
	a.RefreshToken = nil
	s.accounts[id] = a
	return a, nil
}

func (s *memStore) SetState(_ context.Context, id int64, state model.AccountState) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	if s.conflicts(a, state.Deleted) {
		return model.Account{}, model.ErrConflict
	}
	a.AccountState = state
	s.accounts[id] = a
	return a, nil
}

func (s *memStore) MarkDeletedByAccount(_ context.Context, accountID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletedCustomers[accountID] = true
	return nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}
