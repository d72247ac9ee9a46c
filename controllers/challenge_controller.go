// file: controllers/challenge_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"PracticeCTF/dto"
	"PracticeCTF/middlewares"
	"PracticeCTF/services"
	"PracticeCTF/utils"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	catalog   *services.ChallengeService
	auth      *services.AuthService
	submitter services.FlagSubmitter
}

func NewChallengeController(catalog *services.ChallengeService, auth *services.AuthService, submitter services.FlagSubmitter) *ChallengeController {
	return &ChallengeController{catalog: catalog, auth: auth, submitter: submitter}
}

// Dashboard 题目列表加当前用户分数
func (ctl *ChallengeController) Dashboard(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := ctl.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	challenges, err := ctl.catalog.List(c.Request.Context())
	if err != nil {
		utils.Flash(c, "Failed to load challenges")
		challenges = nil
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"username":   user.Username,
		"score":      user.Score,
		"challenges": challenges,
		"flashes":    utils.ConsumeFlashes(c),
	})
}

func (ctl *ChallengeController) ShowCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{
		"flashes": utils.ConsumeFlashes(c),
	})
}

func (ctl *ChallengeController) Create(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Flash(c, "Invalid form data")
		utils.Redirect(c, "/create")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		utils.Flash(c, err.Error())
		utils.Redirect(c, "/create")
		return
	}

	_, err := ctl.catalog.Create(c.Request.Context(), req.Name, req.Description, req.Flag, req.PointsValue())
	if err != nil {
		utils.Flash(c, "Failed to create challenge")
		utils.Redirect(c, "/create")
		return
	}

	utils.Flash(c, "Challenge created")
	utils.Redirect(c, "/dashboard")
}

// ShowChallenge 题目详情页，带 flag 提交表单
func (ctl *ChallengeController) ShowChallenge(c *gin.Context) {
	challengeID, err := parseChallengeID(c)
	if err != nil {
		utils.Flash(c, "Challenge not found")
		utils.Redirect(c, "/dashboard")
		return
	}

	challenge, err := ctl.catalog.Get(c.Request.Context(), challengeID)
	if err != nil {
		utils.Flash(c, "Challenge not found")
		utils.Redirect(c, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "challenge.html", gin.H{
		"challenge": challenge,
		"flashes":   utils.ConsumeFlashes(c),
	})
}

// SubmitFlag 判题，结果闪现后跳回题目页
func (ctl *ChallengeController) SubmitFlag(c *gin.Context) {
	challengeID, err := parseChallengeID(c)
	if err != nil {
		utils.Flash(c, "Challenge not found")
		utils.Redirect(c, "/dashboard")
		return
	}

	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var req dto.SubmitFlagReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Flash(c, "Invalid form data")
		utils.Redirect(c, "/challenge/"+strconv.FormatUint(uint64(challengeID), 10))
		return
	}

	outcome, err := ctl.submitter.Submit(c.Request.Context(), userID, challengeID, req.Flag)
	if err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			utils.Flash(c, "Challenge not found")
			utils.Redirect(c, "/dashboard")
			return
		}
		utils.Flash(c, "Submission failed, please try again")
		utils.Redirect(c, "/challenge/"+strconv.FormatUint(uint64(challengeID), 10))
		return
	}

	switch outcome {
	case services.OutcomeCorrect:
		utils.Flash(c, "Correct Flag! Points Added")
	case services.OutcomeDuplicate:
		utils.Flash(c, "Already solved")
	default:
		utils.Flash(c, "Wrong Flag")
	}
	utils.Redirect(c, "/challenge/"+strconv.FormatUint(uint64(challengeID), 10))
}

func parseChallengeID(c *gin.Context) (uint32, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}
