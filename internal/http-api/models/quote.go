package models

import "time"

// LikesCount stays a pointer: rows imported from the legacy dump have NULL
// likes_count and the like endpoint is expected to fail on them.
type Quote struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ShowID      int64     `json:"show_id" gorm:"column:show_id"`
	CharacterID *int64    `json:"character_id" gorm:"column:character_id"`
	EpisodeID   *int64    `json:"episode_id" gorm:"column:episode_id"`
	QuoteText   string    `json:"quote_text" gorm:"column:quote_text;type:text;not null"`
	Context     string    `json:"context,omitempty" gorm:"type:text"`
	IsFamous    bool      `json:"is_famous" gorm:"column:is_famous"`
	LikesCount  *int      `json:"likes_count,omitempty" gorm:"column:likes_count"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Quote) TableName() string {
	return "quotes"
}
