// Package memory is a process-local implementation of the storage
// interfaces. It enforces the same unique keys as the Postgres schema.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hongminglow/accounts-be/internal/models"
	"github.com/hongminglow/accounts-be/internal/storage"
)

var (
	_ storage.UserStore     = (*Store)(nil)
	_ storage.BusinessStore = (*Store)(nil)
)

// Store keeps users and businesses in maps guarded by a mutex.
type Store struct {
	mu         sync.Mutex
	nextID     int64
	users      map[int64]models.User
	businesses map[int64]models.Business
	writes     int
	err        error
}

func New() *Store {
	return &Store{
		users:      make(map[int64]models.User),
		businesses: make(map[int64]models.Business),
	}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Writes counts successful inserts and updates.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.User{}, s.err
	}
	for _, u := range s.users {
		if u.Email == user.Email || (user.Username != nil && u.Username != nil && *u.Username == *user.Username) {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = user
	s.writes++
	return user, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Email == email })
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Username != nil && *u.Username == username })
}

func (s *Store) findUser(match func(models.User) bool) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.User{}, s.err
	}
	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Empty() {
		return &u, nil
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Surname != nil {
		u.Surname = patch.Surname
	}
	if patch.Username != nil {
		u.Username = patch.Username
	}
	if patch.Age != nil {
		u.Age = *patch.Age
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	for otherID, other := range s.users {
		if otherID == id {
			continue
		}
		if other.Email == u.Email || (u.Username != nil && other.Username != nil && *other.Username == *u.Username) {
			return nil, storage.ErrAlreadyExists
		}
	}
	s.users[id] = u
	s.writes++
	return &u, nil
}

func (s *Store) CreateBusiness(_ context.Context, business models.Business) (models.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Business{}, s.err
	}
	for _, b := range s.businesses {
		if b.Email == business.Email || b.Username == business.Username {
			return models.Business{}, storage.ErrAlreadyExists
		}
	}
	s.nextID++
	business.ID = s.nextID
	business.CreatedAt = time.Now().UTC()
	s.businesses[business.ID] = business
	s.writes++
	return business, nil
}

func (s *Store) FindBusinessByEmail(_ context.Context, email string) (models.Business, error) {
	return s.findBusiness(func(b models.Business) bool { return b.Email == email })
}

func (s *Store) FindBusinessByUsername(_ context.Context, username string) (models.Business, error) {
	return s.findBusiness(func(b models.Business) bool { return b.Username == username })
}

func (s *Store) findBusiness(match func(models.Business) bool) (models.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Business{}, s.err
	}
	for _, b := range s.businesses {
		if match(b) {
			return b, nil
		}
	}
	return models.Business{}, storage.ErrNotFound
}
