// file: services/auth_service.go
package services

import (
	"context"

	"PracticeCTF/models"
	"PracticeCTF/repositories"
)

type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register 创建新用户，初始分数为 0，密码由模型钩子哈希
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		Username: username,
		Password: password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// 预检和写入之间被并发注册抢先，唯一约束兜底
		if repositories.IsDuplicate(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// GetUser 按 ID 读取用户，仪表盘展示当前分数用
func (s *AuthService) GetUser(ctx context.Context, userID uint32) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Login 用户不存在和密码错误返回同一个错误，不暴露区别
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
