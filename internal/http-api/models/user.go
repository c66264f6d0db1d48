package models

import "time"

// PasswordHash is serialized on purpose: the frontend contract predates the
// json:"-" convention and still reads the field.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"password_hash" gorm:"column:password_hash;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	DisplayName  string    `json:"display_name,omitempty" gorm:"column:display_name"`
	AvatarURL    string    `json:"avatar_url" gorm:"column:avatar_url;type:text"`
	Role         string    `json:"role,omitempty"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active"`
	CreatedAt    time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
