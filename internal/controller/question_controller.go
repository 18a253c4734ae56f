package controller

import (
	"cyber_quiz_backend/internal/service"
	"cyber_quiz_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuizService *service.QuizService
}

func NewQuestionController(quizService *service.QuizService) *QuestionController {
	return &QuestionController{QuizService: quizService}
}

// GetRandomQuestions godoc
// @Summary 随机出题
// @Description 按分类/难度过滤后随机抽取题目，不返回答案与解析
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   count query int false "题目数量" default(5)
// @Param   category query string false "分类过滤"
// @Param   difficulty query string false "难度过滤"
// @Success 200 {object} util.Response{data=[]service.QuestionResponse} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /questions/random [get]
func (c *QuestionController) GetRandomQuestions(ctx *gin.Context) {
	count, err := strconv.Atoi(ctx.DefaultQuery("count", "5"))
	if err != nil || count < 1 {
		util.BadRequest(ctx, "count must be a positive integer")
		return
	}

	questions, err := c.QuizService.RandomQuestions(
		count,
		ctx.Query("category"),
		ctx.Query("difficulty"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// GetCategories godoc
// @Summary 题目分类列表
// @Description 返回题库中所有分类，顺序不保证
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /questions/categories [get]
func (c *QuestionController) GetCategories(ctx *gin.Context) {
	categories, err := c.QuizService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}

// SubmitAnswer godoc
// @Summary 提交答案
// @Description 判题、记录流水并返回即时反馈
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SubmitAnswerRequest true "答案提交"
// @Success 200 {object} util.Response{data=service.AnswerResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /questions/submit [post]
func (c *QuestionController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitAnswer(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// GetStats godoc
// @Summary 用户答题统计
// @Description 返回当前用户的答题统计、排名、分类明细与最近动态
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserStats} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /questions/stats [get]
func (c *QuestionController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.QuizService.UserStats(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, stats)
}
