// file: dto/auth.go
package dto

import (
	"errors"
	"strings"
)

// ========== 请求 DTO ==========

type RegisterReq struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (r *RegisterReq) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *RegisterReq) Validate() error {
	if r.Username == "" || r.Password == "" {
		return errors.New("Username and password are required")
	}
	return nil
}

type LoginReq struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (r *LoginReq) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *LoginReq) Validate() error {
	if r.Username == "" || r.Password == "" {
		return errors.New("Username and password are required")
	}
	return nil
}
