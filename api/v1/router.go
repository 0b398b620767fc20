package v1

import (
	"time"

	"postboard/internal/auth"
	"postboard/internal/storage"
	myvalidator "postboard/internal/validator"
	"postboard/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterValidators 在 gin 的 binding 引擎上注册自定义校验器
func RegisterValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("phone", myvalidator.IsPhone)
	}
	return nil
}

// NewRouter assembles the full route table. rdb may be nil, in which case
// the login rate limiter is not installed. uploadsDir is only served when
// the local storage backend is active (non-empty).
func NewRouter(authAPI *AuthAPI, userAPI *UserAPI, postAPI *PostAPI,
	tokens *auth.TokenManager, rdb *redis.Client, uploadsDir string) *gin.Engine {

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if uploadsDir != "" {
		r.Static(storage.URLPrefix, uploadsDir)
	}

	// 公共路由
	public := r.Group("/api")
	{
		public.POST("/auth/register", authAPI.Register)
		if rdb != nil {
			loginLimiter := middleware.LoginRateLimiter(rdb, 5, time.Minute)
			public.POST("/auth/login", loginLimiter, authAPI.Login)
		} else {
			public.POST("/auth/login", authAPI.Login)
		}
		public.GET("/posts", postAPI.List)
		public.GET("/posts/:id", postAPI.Get)
	}

	// 私有路由
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware(tokens))
	{
		private.GET("/users", userAPI.List)
		private.GET("/users/:id", userAPI.Get)
		private.PUT("/users/:id", userAPI.Update)
		private.DELETE("/users/:id", userAPI.Delete)

		private.POST("/posts", postAPI.Create)
		private.PUT("/posts/:id", postAPI.Update)
		private.DELETE("/posts/:id", postAPI.Delete)
	}

	return r
}
