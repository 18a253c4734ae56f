package controller

import (
	"cyber_quiz_backend/internal/service"
	"cyber_quiz_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	QuizService *service.QuizService
}

func NewLeaderboardController(quizService *service.QuizService) *LeaderboardController {
	return &LeaderboardController{QuizService: quizService}
}

// GetLeaderboard godoc
// @Summary 积分排行榜
// @Description 按积分降序返回前limit名用户，名次为榜单内位置
// @Tags 排行榜
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "榜单长度" default(10)
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		util.BadRequest(ctx, "limit must be a positive integer")
		return
	}

	leaderboard, err := c.QuizService.Leaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, leaderboard)
}

// GetMyRank godoc
// @Summary 当前用户排名
// @Description 返回当前用户的榜单条目，名次按积分严格大于计数计算
// @Tags 排行榜
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.LeaderboardEntry} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /leaderboard/me [get]
func (c *LeaderboardController) GetMyRank(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entry, err := c.QuizService.MyRankEntry(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, entry)
}
