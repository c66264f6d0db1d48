package models

import "time"

type Show struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Genre       string    `json:"genre"`
	StartYear   int       `json:"start_year,omitempty"`
	EndYear     *int      `json:"end_year"` // nil while the show is still running
	Network     string    `json:"network,omitempty"`
	PosterURL   string    `json:"poster_url" gorm:"column:poster_url;type:text"`
	CreatedAt   time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Show) TableName() string {
	return "shows"
}
