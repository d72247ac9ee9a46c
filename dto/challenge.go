// file: dto/challenge.go
package dto

import (
	"errors"
	"strconv"
	"strings"
)

// ========== 请求 DTO ==========

// CreateChallengeReq 表单里的 points 是字符串，解析放在 Validate 统一处理
type CreateChallengeReq struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Flag        string `form:"flag"`
	Points      string `form:"points"`

	points uint
}

func (r *CreateChallengeReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Flag = strings.TrimSpace(r.Flag)
	r.Points = strings.TrimSpace(r.Points)
}

func (r *CreateChallengeReq) Validate() error {
	if r.Name == "" || r.Description == "" || r.Flag == "" || r.Points == "" {
		return errors.New("All fields are required")
	}
	pts, err := strconv.ParseUint(r.Points, 10, 32)
	if err != nil || pts == 0 {
		return errors.New("Points must be a positive number")
	}
	r.points = uint(pts)
	return nil
}

// PointsValue 返回 Validate 解析出的分值
func (r *CreateChallengeReq) PointsValue() uint {
	return r.points
}

// SubmitFlagReq 不做任何清洗，flag 按原样精确比较
type SubmitFlagReq struct {
	Flag string `form:"flag"`
}

// ========== 响应 DTO ==========

type ChallengeItemResp struct {
	ID            uint32 `json:"id"`
	ChallengeName string `json:"challenge_name"`
	Points        uint   `json:"points"`
}

type LeaderboardEntryResp struct {
	Rank     uint   `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}
