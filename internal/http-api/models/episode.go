package models

import "time"

type Episode struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ShowID         int64      `json:"show_id" gorm:"column:show_id"`
	SeasonID       int64      `json:"season_id" gorm:"column:season_id"`
	EpisodeNumber  int        `json:"episode_number" gorm:"column:episode_number;not null"`
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description,omitempty" gorm:"type:text"`
	AirDate        *time.Time `json:"air_date" gorm:"column:air_date"`
	RuntimeMinutes int        `json:"runtime_minutes,omitempty" gorm:"column:runtime_minutes"`
	Director       string     `json:"director"`
	Writer         string     `json:"writer"`
	ThumbnailURL   string     `json:"thumbnail_url,omitempty" gorm:"column:thumbnail_url;type:text"`
	Rating         float64    `json:"rating" gorm:"type:decimal(3,1)"`
	CreatedAt      time.Time  `json:"created_at,omitempty" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Episode) TableName() string {
	return "episodes"
}
