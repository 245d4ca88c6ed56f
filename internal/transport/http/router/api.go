package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"repair-tracker/internal/core/auth"
	"repair-tracker/internal/repo"
	"repair-tracker/internal/storage"
	"repair-tracker/internal/transport/http/handler"
	mdw "repair-tracker/internal/transport/http/middleware"
)

type Options struct {
	MaxBodyBytes int64
	PublicPath   string // URL prefix for served uploads
}

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, store *storage.Local, opt Options) *gin.Engine {
	if opt.MaxBodyBytes <= 0 {
		opt.MaxBodyBytes = 16 << 20
	}
	if opt.PublicPath == "" {
		opt.PublicPath = "/uploads"
	}

	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(opt.MaxBodyBytes),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handler.NewAuthHandler(repo.NewUserRepo(db), jwter)
	jobsH := handler.NewRepairJobHandler(repo.NewRepairJobRepo(db))
	upH := handler.NewUploadHandler(store, opt.PublicPath)

	requireAuth := mdw.AuthJWT(jwter)

	ag := r.Group("/auth")
	ag.POST("/register", authH.Register)
	ag.POST("/login", authH.Login)
	ag.GET("/me", requireAuth, authH.Me)

	jg := r.Group("/repair-jobs", requireAuth)
	jg.GET("", jobsH.List)
	jg.POST("", jobsH.Create)
	jg.PUT("/:id", jobsH.Update)
	jg.DELETE("/:id", jobsH.Delete)

	r.POST("/upload", requireAuth, upH.Upload)
	r.GET("/uploads/:filename", upH.Serve)

	return r
}
