package model

import "time"

// User 用户模型
//
// Author preloads select only a subset of columns, so every optional
// field omits its zero value to keep embedded author objects compact.
type User struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	Name           string     `gorm:"not null;size:100" json:"name"`
	Email          string     `gorm:"unique;not null;size:191" json:"email,omitempty"`
	PhoneNumber    string     `gorm:"unique;not null;size:20" json:"phoneNumber,omitempty"`
	Role           string     `gorm:"not null;size:50" json:"role,omitempty"`
	Specialisation string     `gorm:"size:100" json:"specialisation,omitempty"`
	BirthYear      *time.Time `json:"birthYear,omitempty"`
	AvatarURL      string     `gorm:"size:255" json:"avatarUrl,omitempty"`
	PasswordHash   string     `gorm:"not null;size:255" json:"-"` // 忽略JSON序列化
	CreatedAt      time.Time  `json:"createdAt,omitzero"`
	UpdatedAt      time.Time  `json:"updatedAt,omitzero"`
}
