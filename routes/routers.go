package routes

import (
	"chatbox/controllers"
	"chatbox/middleware"
	"chatbox/services"
	"chatbox/services/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, sessions services.SessionStore) {
	chatService := services.NewChatService(db, logger.NewDefaultLogger(logger.InfoLevel))

	authController := controllers.NewAuthController(sessions)
	chatController := controllers.NewChatController(chatService)

	router.Use(middleware.LoadSession(sessions))

	router.GET("/", authController.LoginPage)
	router.POST("/", authController.Login)
	router.GET("/signup", authController.SignupPage)
	router.POST("/signup", authController.Signup)
	router.GET("/logout", authController.Logout)

	router.GET("/chat", middleware.RequirePage(), chatController.ChatPage)

	api := router.Group("/api")
	api.POST("/login", authController.APILogin)
	api.POST("/chat", middleware.RequireAPI(), chatController.ChatAPI)
}
