package dao

import (
	"postboard/model"

	"gorm.io/gorm"
)

type PostDAO struct {
	db *gorm.DB
}

// NewPostDAO 创建一个新的 PostDAO 实例
func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

// 作者只暴露公开字段，密码哈希等绝不随帖子返回
func preloadAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "specialisation", "avatar_url")
}

// Create 创建帖子并回填作者信息
func (dao *PostDAO) Create(post *model.Post) error {
	if err := dao.db.Omit("Author").Create(post).Error; err != nil {
		return err
	}
	return dao.db.Preload("Author", preloadAuthor).First(post, post.ID).Error
}

// FindByID 根据 ID 查询帖子（含作者）
func (dao *PostDAO) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	if err := dao.db.Preload("Author", preloadAuthor).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List 按创建时间倒序返回全部帖子（含作者）
func (dao *PostDAO) List() ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Preload("Author", preloadAuthor).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Save 持久化对帖子的修改并回填作者信息
func (dao *PostDAO) Save(post *model.Post) error {
	if err := dao.db.Omit("Author").Save(post).Error; err != nil {
		return err
	}
	return dao.db.Preload("Author", preloadAuthor).First(post, post.ID).Error
}

// Delete 永久删除帖子
func (dao *PostDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.Post{}, id).Error
}
