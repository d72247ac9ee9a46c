// file: models/submission.go
package models

import (
	"time"
)

// Submission 仅记录正确的提交；(challenge_id, user_id) 唯一索引保证
// 同一用户对同一题目至多加分一次
type Submission struct {
	ID          uint64    `gorm:"primarykey"`
	ChallengeID uint32    `gorm:"uniqueIndex:unique_challenge_user;not null"`
	UserID      uint32    `gorm:"uniqueIndex:unique_challenge_user;not null"`
	IsCorrect   bool      `gorm:"not null"`
	SubmittedAt time.Time `gorm:"autoCreateTime"`
}

func (Submission) TableName() string {
	return "practicectf_submission"
}
