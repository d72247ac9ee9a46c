// file: models/challenge.go
package models

import (
	"time"
)

type Challenge struct {
	ID            uint32    `gorm:"primarykey" json:"id"`
	ChallengeName string    `gorm:"size:100;not null" json:"challenge_name"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Flag          string    `gorm:"size:255;not null" json:"-"`
	Points        uint      `gorm:"not null" json:"points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Challenge) TableName() string {
	return "practicectf_challenge"
}
