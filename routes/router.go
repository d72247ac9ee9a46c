// file: routes/router.go
package routes

import (
	"PracticeCTF/controllers"
	"PracticeCTF/middlewares"
	"PracticeCTF/services"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Page        *controllers.PageController
	User        *controllers.UserController
	Challenge   *controllers.ChallengeController
	Leaderboard *controllers.LeaderboardController
}

// SetupRouter 组装全部路由；需要登录的页面都挂在会话中间件后面
func SetupRouter(ctls Controllers, sessions *services.SessionService, cookieName, templateGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templateGlob)

	// 公开页面
	r.GET("/", ctls.Page.Home)
	r.GET("/register", ctls.User.ShowRegister)
	r.POST("/register", ctls.User.Register)
	r.GET("/login", ctls.User.ShowLogin)
	r.POST("/login", ctls.User.Login)

	// 登录后页面
	authed := r.Group("/")
	authed.Use(middlewares.SessionAuthMiddleware(sessions, cookieName))
	{
		authed.GET("/logout", ctls.User.Logout)
		authed.GET("/dashboard", ctls.Challenge.Dashboard)
		authed.GET("/leaderboard", ctls.Leaderboard.Leaderboard)
		authed.GET("/create", ctls.Challenge.ShowCreate)
		authed.POST("/create", ctls.Challenge.Create)
		authed.GET("/challenge/:id", ctls.Challenge.ShowChallenge)
		authed.POST("/challenge/:id", ctls.Challenge.SubmitFlag)
		authed.GET("/new_challenge", ctls.Page.NewChallengeRedirect)
	}

	return r
}
