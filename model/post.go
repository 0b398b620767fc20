package model

import "time"

// Post 帖子模型
type Post struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	AuthorID    uint64    `gorm:"not null;index" json:"-"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author"` // 关联作者
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
