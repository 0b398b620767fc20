package service

import (
	"sort"
	"sync"
	"time"

	"postboard/model"

	"gorm.io/gorm"
)

// In-memory stands-ins for the gorm DAOs. They reproduce the error
// behavior the services rely on: gorm.ErrDuplicatedKey on unique
// violations and gorm.ErrRecordNotFound on missing rows.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint64]*model.User)}
}

func (s *fakeUserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email || u.PhoneNumber == user.PhoneNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindByID(id uint64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) List() ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeUserStore) Save(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

type fakePostStore struct {
	mu     sync.Mutex
	nextID uint64
	posts  map[uint64]*model.Post
	users  *fakeUserStore
}

func newFakePostStore(users *fakeUserStore) *fakePostStore {
	return &fakePostStore{posts: make(map[uint64]*model.Post), users: users}
}

// publicAuthor mirrors the DAO's preload: only the public columns.
func (s *fakePostStore) publicAuthor(id uint64) model.User {
	u, err := s.users.FindByID(id)
	if err != nil {
		return model.User{}
	}
	return model.User{ID: u.ID, Name: u.Name, Specialisation: u.Specialisation, AvatarURL: u.AvatarURL}
}

func (s *fakePostStore) Create(post *model.Post) error {
	s.mu.Lock()
	s.nextID++
	post.ID = s.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	s.posts[post.ID] = &cp
	s.mu.Unlock()
	post.Author = s.publicAuthor(post.AuthorID)
	return nil
}

func (s *fakePostStore) FindByID(id uint64) (*model.Post, error) {
	s.mu.Lock()
	p, ok := s.posts[id]
	s.mu.Unlock()
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	cp.Author = s.publicAuthor(cp.AuthorID)
	return &cp, nil
}

func (s *fakePostStore) List() ([]model.Post, error) {
	s.mu.Lock()
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	for i := range out {
		out[i].Author = s.publicAuthor(out[i].AuthorID)
	}
	return out, nil
}

func (s *fakePostStore) Save(post *model.Post) error {
	s.mu.Lock()
	if _, ok := s.posts[post.ID]; !ok {
		s.mu.Unlock()
		return gorm.ErrRecordNotFound
	}
	post.UpdatedAt = time.Now()
	cp := *post
	s.posts[post.ID] = &cp
	s.mu.Unlock()
	post.Author = s.publicAuthor(post.AuthorID)
	return nil
}

func (s *fakePostStore) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}
