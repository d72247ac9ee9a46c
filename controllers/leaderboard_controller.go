// file: controllers/leaderboard_controller.go
package controllers

import (
	"net/http"

	"PracticeCTF/services"
	"PracticeCTF/utils"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	leaderboard *services.LeaderboardService
}

func NewLeaderboardController(leaderboard *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboard: leaderboard}
}

func (ctl *LeaderboardController) Leaderboard(c *gin.Context) {
	entries, err := ctl.leaderboard.RankedUsers(c.Request.Context())
	if err != nil {
		utils.Flash(c, "Failed to load leaderboard")
		utils.Redirect(c, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "leaderboard.html", gin.H{
		"entries": entries,
		"flashes": utils.ConsumeFlashes(c),
	})
}
