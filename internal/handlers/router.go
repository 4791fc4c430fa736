package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	"rolecrm/internal/middleware"
	"rolecrm/internal/services"
)

// Dependencies are the services the API is built from.
type Dependencies struct {
	Sessions    services.SessionServicer
	Permissions services.PermissionServicer
	Activity    services.ActivityServicer
	Users       services.UserServicer
	Contacts    services.ContactServicer
	Preferences services.PreferenceServicer
	Tokens      *middleware.TokenManager
}

// RegisterRoutes mounts the /api/v1 surface on router. Every group is
// guarded by the page it backs.
func RegisterRoutes(router *gin.Engine, d Dependencies) {
	authHandler := NewAuthHandler(d.Sessions, d.Tokens, d.Permissions, d.Activity)
	accessHandler := NewAccessHandler(d.Permissions)
	permissionHandler := NewPermissionHandler(d.Permissions, d.Activity)
	activityHandler := NewActivityHandler(d.Activity)
	contactHandler := NewContactHandler(d.Contacts, d.Permissions, d.Activity)
	userHandler := NewUserHandler(d.Users, d.Activity)
	preferenceHandler := NewPreferenceHandler(d.Preferences, d.Activity)

	guard := func(page string) gin.HandlerFunc {
		return middleware.GuardPage(d.Permissions, page)
	}
	requires := func(action string) gin.HandlerFunc {
		return middleware.Guard(d.Permissions, access.Requirement{Permission: action})
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(d.Tokens, d.Sessions))

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	v1.GET("/routes", accessHandler.ListRoutes)
	v1.GET("/routes/:name", accessHandler.CheckRoute)

	// Any signed-in identity
	v1.GET("/session", guard(access.PageDashboard), authHandler.GetSession)
	v1.GET("/access", guard(access.PageDashboard), accessHandler.GetCapabilities)

	contacts := v1.Group("/contacts", guard(access.PageContacts))
	contacts.GET("", contactHandler.ListContacts)
	contacts.POST("", guard(access.PageContactNew), contactHandler.CreateContact)
	contacts.GET("/export", requires(access.ActionExportContacts), contactHandler.ExportContacts)
	contacts.GET("/:id", contactHandler.GetContact)
	contacts.PUT("/:id", requires(access.ActionEditContact), contactHandler.UpdateContact)
	contacts.DELETE("/:id", requires(access.ActionDeleteContact), contactHandler.DeleteContact)

	reports := v1.Group("/reports", guard(access.PageReports))
	reports.GET("/summary", contactHandler.GetReportSummary)

	activity := v1.Group("/activity", guard(access.PageActivity))
	activity.GET("", activityHandler.ListActivity)
	activity.DELETE("", requires(access.ActionClearActivityLogs), activityHandler.ClearActivity)

	users := v1.Group("/users", guard(access.PageUsers))
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	permissions := v1.Group("/permissions", guard(access.PagePermissions))
	permissions.GET("", permissionHandler.GetPermissions)
	permissions.POST("/reset", permissionHandler.ResetPermissions)
	permissions.GET("/:role", permissionHandler.GetRolePermissions)
	permissions.PUT("/:role", permissionHandler.UpdateRolePermission)

	settings := v1.Group("/preferences", guard(access.PageSettings))
	settings.GET("", preferenceHandler.GetPreferences)
	settings.PUT("", preferenceHandler.UpdatePreferences)

	profile := v1.Group("/profile", guard(access.PageProfile))
	profile.GET("/image", preferenceHandler.GetProfileImage)
	profile.PUT("/image", preferenceHandler.UpdateProfileImage)
}
