package main

import (
	"context"
	"net/http"

	"github.com/Slade66/reactive-sheet/internal/status"
	"github.com/Slade66/reactive-sheet/pkg/update"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// updateQueue 是更新队列的投递端
type updateQueue interface {
	Enqueue(ctx context.Context, u *update.ValuesUpdate) error
}

// statusLister 读取观察者状态
type statusLister interface {
	GetAllObservers(ctx context.Context) ([]status.StatusInfo, error)
}

type server struct {
	queue    updateQueue
	statuses statusLister
	log      zerolog.Logger
}

// newRouter 注册所有 API 路由
func newRouter(s *server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/values", s.setValuesHandler)
		api.GET("/observers", s.getObserversHandler)
		api.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
	return router
}

// setValuesHandler 接收新的数值序列，并把它作为一次更新投递到队列
func (s *server) setValuesHandler(c *gin.Context) {
	var request struct {
		Values []float64 `json:"values" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求: " + err.Error()})
		return
	}

	u := update.New(request.Values, "api")
	if err := s.queue.Enqueue(c.Request.Context(), u); err != nil {
		s.log.Error().Err(err).Msg("无法将更新发布到 Redis")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法将更新发布到 Redis"})
		return
	}

	s.log.Info().Str("update_id", u.ID.String()).Int("values", len(u.Values)).Msg("📥 更新已投递到消息队列")
	c.JSON(http.StatusAccepted, gin.H{
		"message":   "更新已接收，正在排队等待处理...",
		"update_id": u.ID.String(),
	})
}

// getObserversHandler 返回所有观察者最近一次更新的状态
func (s *server) getObserversHandler(c *gin.Context) {
	observers, err := s.statuses.GetAllObservers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法从 Redis 获取观察者状态: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, observers)
}
