package service

import (
	"errors"

	"postboard/model"

	"gorm.io/gorm"
)

// PostStore is the persistence surface the post service depends on.
// *dao.PostDAO is the production implementation.
type PostStore interface {
	Create(post *model.Post) error
	FindByID(id uint64) (*model.Post, error)
	List() ([]model.Post, error)
	Save(post *model.Post) error
	Delete(id uint64) error
}

// PostService 封装帖子的增删改查与作者归属校验
type PostService struct {
	posts PostStore
	users UserStore
}

// NewPostService 创建一个新的 PostService 实例
func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a new post for the acting user. The author reference must
// resolve at creation time.
func (s *PostService) Create(authorID uint64, title, description string, images []string) (*model.Post, error) {
	if _, err := s.users.FindByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post := &model.Post{
		Title:       title,
		Description: description,
		Images:      images,
		AuthorID:    authorID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get 根据 ID 查询帖子
func (s *PostService) Get(id uint64) (*model.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// List 按创建时间倒序返回全部帖子
func (s *PostService) List() ([]model.Post, error) {
	return s.posts.List()
}

// Update mutates a post after the ownership check. A non-nil images slice
// replaces the prior reference set entirely; nil retains it. Empty title or
// description leave the stored values unchanged.
func (s *PostService) Update(id, actorID uint64, title, description string, images []string) (*model.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, ErrForbidden
	}
	if title != "" {
		post.Title = title
	}
	if description != "" {
		post.Description = description
	}
	if images != nil {
		post.Images = images
	}
	if err := s.posts.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post after the ownership check. Hard delete, no recovery.
func (s *PostService) Delete(id, actorID uint64) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return ErrForbidden
	}
	return s.posts.Delete(id)
}
