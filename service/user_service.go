package service

import (
	"errors"
	"time"

	"postboard/internal/auth"
	"postboard/model"
	"postboard/utils"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// UserStore is the persistence surface the user service depends on.
// *dao.UserDAO is the production implementation.
type UserStore interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint64) (*model.User, error)
	List() ([]model.User, error)
	Save(user *model.User) error
	Delete(id uint64) error
}

// UserService bundles the store and the token issuer.
type UserService struct {
	store  UserStore
	tokens *auth.TokenManager
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(store UserStore, tokens *auth.TokenManager) *UserService {
	return &UserService{store: store, tokens: tokens}
}

// Register persists a freshly created user after hashing the password.
func (s *UserService) Register(user *model.User, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	if err := s.store.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Login validates email/password and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (string, error) {
	user, err := s.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}

// List 返回全部用户
func (s *UserService) List() ([]model.User, error) {
	return s.store.List()
}

// Get 根据 ID 查询用户
func (s *UserService) Get(id uint64) (*model.User, error) {
	user, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUserInput carries profile mutations. Empty fields leave the stored
// value unchanged; AvatarURL replaces the prior avatar only when set.
type UpdateUserInput struct {
	Name           string
	PhoneNumber    string
	Role           string
	Specialisation string
	BirthYear      *time.Time
	AvatarURL      string
}

// Update mutates a profile. Any authenticated bearer may update any user —
// preserved behavior of the upstream design, no ownership check here.
func (s *UserService) Update(id uint64, in UpdateUserInput) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.PhoneNumber != "" {
		user.PhoneNumber = in.PhoneNumber
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Specialisation != "" {
		user.Specialisation = in.Specialisation
	}
	if in.BirthYear != nil {
		user.BirthYear = in.BirthYear
	}
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	if err := s.store.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Authored posts are left in place, dangling author
// references included — preserved behavior of the upstream design.
func (s *UserService) Delete(id uint64) error {
	return s.store.Delete(id)
}
