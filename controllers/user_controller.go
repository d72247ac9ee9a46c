// file: controllers/user_controller.go
package controllers

import (
	"errors"
	"net/http"

	"PracticeCTF/dto"
	"PracticeCTF/services"
	"PracticeCTF/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	auth       *services.AuthService
	sessions   *services.SessionService
	cookieName string
	cookieTTL  int
}

func NewUserController(auth *services.AuthService, sessions *services.SessionService, cookieName string, cookieTTL int) *UserController {
	return &UserController{auth: auth, sessions: sessions, cookieName: cookieName, cookieTTL: cookieTTL}
}

func (ctl *UserController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"flashes": utils.ConsumeFlashes(c),
	})
}

func (ctl *UserController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Flash(c, "Invalid form data")
		utils.Redirect(c, "/register")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		utils.Flash(c, err.Error())
		utils.Redirect(c, "/register")
		return
	}

	if _, err := ctl.auth.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			utils.Flash(c, "Username already exists")
		} else {
			utils.Flash(c, "Registration failed, please try again")
		}
		utils.Redirect(c, "/register")
		return
	}

	utils.Redirect(c, "/login")
}

func (ctl *UserController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": utils.ConsumeFlashes(c),
	})
}

func (ctl *UserController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Flash(c, "Invalid form data")
		utils.Redirect(c, "/login")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		utils.Flash(c, err.Error())
		utils.Redirect(c, "/login")
		return
	}

	user, err := ctl.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.Flash(c, "Invalid credentials")
		utils.Redirect(c, "/login")
		return
	}

	token, err := ctl.sessions.Issue(c.Request.Context(), user)
	if err != nil {
		utils.Flash(c, "Login failed, please try again")
		utils.Redirect(c, "/login")
		return
	}

	c.SetCookie(ctl.cookieName, token, ctl.cookieTTL, "/", "", false, true)
	utils.Redirect(c, "/dashboard")
}

// Logout 无条件清除会话
func (ctl *UserController) Logout(c *gin.Context) {
	if token, err := c.Cookie(ctl.cookieName); err == nil && token != "" {
		ctl.sessions.Revoke(c.Request.Context(), token)
	}
	c.SetCookie(ctl.cookieName, "", -1, "/", "", false, true)
	utils.Redirect(c, "/")
}
