package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/auth"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
	}
}
