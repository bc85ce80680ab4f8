package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/techbuddyspace/certify/internal/app_context"
	"github.com/techbuddyspace/certify/internal/config"
	"github.com/techbuddyspace/certify/internal/controller"
	"github.com/techbuddyspace/certify/internal/database"
	"github.com/techbuddyspace/certify/internal/env"
	filestorage "github.com/techbuddyspace/certify/internal/file_storage"
	"github.com/techbuddyspace/certify/internal/mailer"
	"github.com/techbuddyspace/certify/internal/middleware"
	ratelimiter "github.com/techbuddyspace/certify/internal/rate_limiter"
	"github.com/techbuddyspace/certify/internal/repository"
	"github.com/techbuddyspace/certify/internal/route"
	"github.com/techbuddyspace/certify/internal/util"
	"github.com/techbuddyspace/certify/pkg/certify"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	repo := repository.NewRepository(db, logger, s3)
	storage := filestorage.NewMinioProvider(s3, cfg.Minio.BUCKET)
	compositor := certify.NewCompositor(cfg.Certify.ToCore(), logger)

	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		Storage:    storage,
		Compositor: compositor,
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")
	rApi.GET("/health", _controller.Index.Health)

	route.Verify(r, _controller.Verify, _middleware)
	route.V1_Templates(rApi, _controller.Template, _middleware)
	route.V1_Certificates(rApi, _controller.Certificate, _middleware)
	route.V1_VerificationLogs(rApi, _controller.Verify, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
