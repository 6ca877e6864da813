package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/notify"
)

// SetupRoutes is the single entry-point that wires up the public storefront,
// auth, customer, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, notifier notify.Notifier) {
	SetupAuthRoutes(r, db)
	SetupPublicRoutes(r, db)
	SetupClientRoutes(r, db)
	SetupAdminRoutes(r, db, notifier)
}
