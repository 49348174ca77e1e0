package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodmap/config"
	"foodmap/internal/handler"
	"foodmap/internal/model"
	"foodmap/internal/repository"
	"foodmap/internal/service"
	dbPkg "foodmap/pkg/db"
	"foodmap/pkg/jwt"
	"foodmap/pkg/logger"
	"foodmap/pkg/redis"
	"foodmap/pkg/response"
	"foodmap/pkg/upload"
	"foodmap/pkg/websocket"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载 .env（不存在则忽略）与配置
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== foodmap 服务启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.Comment{},
		&model.Favorite{},
		&model.Like{},
		&model.Followship{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis（排行缓存与离线通知，连不上只降级不退出）
	if err := redis.InitRedis(cfg.Redis); err != nil {
		log.Warn("redis连接失败，排行缓存与离线通知不可用", zap.Error(err))
	} else {
		defer redis.Close()
		log.Info("redis连接成功")
	}

	// 3.3 初始化上传器
	uploader, err := upload.NewLocalUploader(cfg.Upload)
	if err != nil {
		log.Fatal("初始化上传目录失败", zap.Error(err))
	}

	// 3.4 组装业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowshipRepository(db)

	userSvc := service.NewUserService(userRepo, restaurantRepo, commentRepo, followRepo, jwtSvc, uploader)
	engagementSvc := service.NewEngagementService(restaurantRepo, favoriteRepo, likeRepo)
	followshipSvc := service.NewFollowshipService(userRepo, followRepo)
	catalogSvc := service.NewCatalogService(restaurantRepo, favoriteRepo, likeRepo)

	userHandler := handler.NewUserHandler(userSvc)
	engagementHandler := handler.NewEngagementHandler(engagementSvc)
	followshipHandler := handler.NewFollowshipHandler(followshipSvc)
	restaurantHandler := handler.NewRestaurantHandler(catalogSvc)
	adminHandler := handler.NewAdminHandler(catalogSvc, userSvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()
	router.Use(logger.LoggerMiddleware())
	router.Use(logger.RecoveryMiddleware())

	// 上传的头像/图片静态访问
	router.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.Success(c, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 6. 绑定业务路由
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			// 公开接口（无需认证）
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)

			// 需要认证的接口
			authUsers := users.Group("")
			authUsers.Use(jwtSvc.AuthMiddleware())
			{
				authUsers.GET("/top", userHandler.GetTopUsers) // 用户排行
				authUsers.GET("/:id", userHandler.GetProfile)  // 资料页
				authUsers.PUT("/:id", userHandler.EditProfile) // 编辑资料
			}
		}

		// 餐厅目录（公开只读）
		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", restaurantHandler.List)
			restaurants.GET("/:id", restaurantHandler.Get)
		}

		// 收藏/点赞/关注（需要认证）
		authed := v1.Group("")
		authed.Use(jwtSvc.AuthMiddleware())
		{
			authed.POST("/favorites/:restaurant_id", engagementHandler.AddFavorite)
			authed.DELETE("/favorites/:restaurant_id", engagementHandler.RemoveFavorite)
			authed.POST("/likes/:restaurant_id", engagementHandler.AddLike)
			authed.DELETE("/likes/:restaurant_id", engagementHandler.RemoveLike)
			authed.POST("/followships/:user_id", followshipHandler.AddFollowing)
			authed.DELETE("/followships/:user_id", followshipHandler.RemoveFollowing)
		}

		// 管理端（需要认证 + 管理员）
		admin := v1.Group("/admin")
		admin.Use(jwtSvc.AuthMiddleware())
		{
			admin.GET("/restaurants", adminHandler.ListRestaurants)
			admin.POST("/restaurants", adminHandler.CreateRestaurant)
		}
	}

	// 关注通知推送
	router.GET("/ws", websocket.NewHandler(jwtSvc, cfg.Notify))

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}
