// file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"PracticeCTF/utils"

	"github.com/gin-gonic/gin"
)

type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

// Home 落地页，无需登录
func (ctl *PageController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"flashes": utils.ConsumeFlashes(c),
	})
}

// NewChallengeRedirect 兼容旧 UI 的 /new_challenge 入口
func (ctl *PageController) NewChallengeRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/create")
}
