// file: services/errors.go
package services

import "errors"

// 错误按请求边界能恢复的四类划分：校验、认证、未找到，
// 重复解题不是错误而是幂等结果（见 SubmitOutcome）
var (
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrChallengeNotFound  = errors.New("Challenge not found")
	ErrNotAuthenticated   = errors.New("Not authenticated")
)
