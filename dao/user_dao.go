package dao

import (
	"postboard/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// Create 创建新用户
func (dao *UserDAO) Create(user *model.User) error {
	return dao.db.Create(user).Error
}

// FindByEmail 根据邮箱查询用户
func (dao *UserDAO) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := dao.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 根据 ID 查询用户
func (dao *UserDAO) FindByID(id uint64) (*model.User, error) {
	var user model.User
	if err := dao.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List 返回全部用户
func (dao *UserDAO) List() ([]model.User, error) {
	var users []model.User
	if err := dao.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Save 持久化对用户的修改
func (dao *UserDAO) Save(user *model.User) error {
	return dao.db.Save(user).Error
}

// Delete 删除用户，不关联删除其帖子
func (dao *UserDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.User{}, id).Error
}
