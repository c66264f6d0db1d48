package models

import "time"

type Character struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ShowID          int64     `json:"show_id" gorm:"column:show_id"`
	Name            string    `json:"name" gorm:"not null"`
	ActorName       string    `json:"actor_name,omitempty" gorm:"column:actor_name"`
	Bio             string    `json:"bio" gorm:"type:text"`
	ImageURL        string    `json:"image_url,omitempty" gorm:"column:image_url;type:text"`
	IsMainCharacter bool      `json:"is_main_character" gorm:"column:is_main_character"`
	FirstAppearance *int64    `json:"first_appearance" gorm:"column:first_appearance"`
	Status          string    `json:"status,omitempty"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime"`
}

func (Character) TableName() string {
	return "characters"
}
