// Package router wires repositories, services and handlers into the gin
// engine and declares every route the service exposes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/client"
	"coboard-api/internal/handler"
	"coboard-api/internal/metrics"
	"coboard-api/internal/middleware"
	"coboard-api/internal/repository"
	"coboard-api/internal/service"
)

// Config holds everything Setup needs to build the engine
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Storage        client.ObjectStorage
	Mailer         client.Mailer
	BasePath       string
	AllowedOrigins []string
}

// Setup creates the gin engine with all middleware and routes configured
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	forumRepo := repository.NewForumRepository(cfg.DB)
	topicRepo := repository.NewTopicRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	tagRepo := repository.NewTagRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)
	bookmarkRepo := repository.NewBookmarkRepository(cfg.DB)
	accessRepo := repository.NewAccessRepository(cfg.DB)
	fileRepo := repository.NewFileRepository(cfg.DB)

	// Services
	forumService := service.NewForumService(forumRepo, topicRepo, postRepo,
		commentRepo, tagRepo, userRepo, bookmarkRepo, accessRepo, fileRepo,
		cfg.Metrics, cfg.Logger)
	postService := service.NewPostService(forumRepo, topicRepo, postRepo,
		commentRepo, cfg.Metrics, cfg.Logger)
	bookmarkService := service.NewBookmarkService(forumRepo, userRepo,
		bookmarkRepo, cfg.Logger)
	userService := service.NewUserService(userRepo, forumRepo, bookmarkRepo,
		fileRepo, cfg.Logger)
	fileService := service.NewFileService(fileRepo, cfg.Storage, cfg.Metrics,
		cfg.Logger)
	mailService := service.NewMailService(cfg.Mailer, cfg.Metrics, cfg.Logger)

	// Handlers
	forumHandler := handler.NewForumHandler(forumService)
	postHandler := handler.NewPostHandler(postService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	userHandler := handler.NewUserHandler(userService)
	fileHandler := handler.NewFileHandler(fileService)
	mailHandler := handler.NewMailHandler(mailService)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.BasePath)
	{
		// Users
		api.GET("/", userHandler.ListUsers)
		api.POST("/signup", userHandler.Signup)
		api.GET("/user/:id", userHandler.GetUser)
		api.PUT("/user/:id", userHandler.UpdateUser)
		api.DELETE("/user/:sid/:forum_id", forumHandler.DeleteForum)

		// Files and mail
		api.POST("/file", fileHandler.Upload)
		api.GET("/file/:file_id", fileHandler.Download)
		api.POST("/sendmail", mailHandler.SendMail)

		// Boards and forums
		board := api.Group("/coboard/:board")
		{
			board.GET("", forumHandler.GetBoard)
			board.POST("", forumHandler.CreateForum)

			forum := board.Group("/:forum_slug")
			{
				forum.GET("", forumHandler.GetForum)
				forum.POST("", bookmarkHandler.CreateBookmark)
				forum.DELETE("", bookmarkHandler.DeleteBookmark)

				forum.PUT("/setting", forumHandler.UpdateForum)
				forum.POST("/setting", forumHandler.CreateAccess)
				forum.DELETE("/setting", forumHandler.DeleteAccess)

				forum.POST("/topic", postHandler.CreateTopic)
				forum.POST("/post", postHandler.CreatePost)
				forum.POST("/comment", postHandler.AddComment)
				forum.PUT("/like", postHandler.UpdateLike)
			}
		}
	}

	return r
}
