package app

import (
	"campus_link_backend/docs"
	"campus_link_backend/internal/config"
	"campus_link_backend/internal/middleware"
	"campus_link_backend/internal/model"

	"campus_link_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAuthorizedRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerAuthorizedRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// profile and user lookup
		api.GET("/profile", c.auth.GetProfile)
		api.PUT("/profile", c.user.UpdateProfile)
		api.POST("/users/avatar", c.user.UploadAvatar)
		api.GET("/users/search", c.user.Search)

		// friend requests and friendships
		api.POST("/friend-requests", c.friendship.SendRequest)
		api.GET("/friend-requests/sent", c.friendship.ListSent)
		api.GET("/friend-requests/received", c.friendship.ListReceived)
		api.POST("/friend-requests/cancel", c.friendship.Cancel)
		api.POST("/friend-requests/accept", c.friendship.Accept)
		api.POST("/friend-requests/reject", c.friendship.Reject)
		api.GET("/friends", c.friendship.ListFriends)
		api.DELETE("/friends/:friendId", c.friendship.Unfriend)

		// groups
		api.POST("/groups", c.group.Create)
		api.GET("/groups", c.group.List)
		api.GET("/groups/:id", c.group.Get)
		api.PUT("/groups/:id", c.group.Update)
		api.DELETE("/groups/:id", c.group.Delete)
		api.GET("/groups/:id/members", c.group.ListMembers)
		api.POST("/groups/:id/members", c.group.AddMember)
		api.DELETE("/groups/:id/members/:userId", c.group.RemoveMember)
		api.POST("/groups/:id/join", c.group.Join)
		api.POST("/groups/:id/leave", c.group.Leave)

		// conversations and messages
		api.POST("/conversations", c.chat.CreateConversation)
		api.GET("/conversations", c.chat.ListConversations)
		api.GET("/conversations/:id/messages", c.chat.ListMessages)
		api.POST("/conversations/:id/messages", c.chat.SendMessage)
		api.POST("/conversations/:id/read", c.chat.MarkRead)
		api.DELETE("/conversations/:id", c.chat.DeleteConversation)

		// job board
		api.GET("/jobs", c.job.ListPostings)
		api.GET("/jobs/:id", c.job.GetPosting)
		api.POST("/jobs", middleware.RoleMiddleware(model.Company), c.job.CreatePosting)
		api.PUT("/jobs/:id", middleware.RoleMiddleware(model.Company), c.job.UpdatePosting)
		api.DELETE("/jobs/:id", middleware.RoleMiddleware(model.Company), c.job.DeletePosting)
		api.GET("/jobs/:id/applications", middleware.RoleMiddleware(model.Company), c.job.ListApplications)
		api.POST("/jobs/:id/applications", middleware.RoleMiddleware(model.Student), c.job.Apply)
		api.GET("/applications/mine", middleware.RoleMiddleware(model.Student), c.job.ListMyApplications)
		api.PATCH("/applications/:id/status", middleware.RoleMiddleware(model.Company), c.job.UpdateApplicationStatus)
		api.DELETE("/applications/:id", middleware.RoleMiddleware(model.Student), c.job.Withdraw)

		// posts, comments, likes
		api.POST("/posts", c.content.CreatePost)
		api.GET("/posts", c.content.ListPosts)
		api.GET("/posts/:id", c.content.GetPost)
		api.DELETE("/posts/:id", c.content.DeletePost)
		api.POST("/posts/:id/comments", c.content.CreateComment)
		api.GET("/posts/:id/comments", c.content.ListComments)
		api.DELETE("/comments/:id", c.content.DeleteComment)
		api.POST("/posts/:id/like", c.content.ToggleLike)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.dashboard.GetStats)
		admin.GET("/users", c.dashboard.ListUsers)
		admin.PATCH("/users/:id/status", c.dashboard.SetUserStatus)
	}
}
