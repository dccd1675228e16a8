package routes

import (
	adminapi "marketplace-admin/internal/api/admin"
	authapi "marketplace-admin/internal/api/auth"
	"marketplace-admin/internal/api/banners"
	plansapi "marketplace-admin/internal/api/plans"
	usersapi "marketplace-admin/internal/api/users"
	"marketplace-admin/internal/api/usersubs"
	vendorsapi "marketplace-admin/internal/api/vendors"
	"marketplace-admin/internal/app/http/middleware"
	"marketplace-admin/internal/domain/users"
	"marketplace-admin/internal/infra/mailer"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	authapi.Notifier = mailer.SMTPNotifier{}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/login", authapi.Login)
	public.POST("/request-otp", authapi.RequestOTP)
	public.POST("/verify-otp", authapi.VerifyOTP)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Admin console — everything below requires an admin token
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.TypeAdmin))

	admin.GET("/subscriptions", plansapi.ListPlans)
	admin.POST("/subscriptions", plansapi.CreatePlan)
	admin.GET("/subscriptions/:id", plansapi.GetPlan)
	admin.PUT("/subscriptions/:id", plansapi.UpdatePlan)
	admin.DELETE("/subscriptions/:id", plansapi.DeletePlan)

	admin.GET("/user-subscriptions", usersubs.ListUserSubscriptions)
	admin.POST("/user-subscriptions", usersubs.AssignSubscription)
	admin.GET("/user-subscriptions/:id", usersubs.GetUserSubscription)
	admin.PUT("/user-subscriptions/:id", usersubs.UpdateUserSubscription)
	admin.DELETE("/user-subscriptions/:id", usersubs.DeleteUserSubscription)
	admin.POST("/user-subscriptions/:id/tick", usersubs.TickUserSubscription)
	admin.POST("/user-subscriptions/:id/cancel", usersubs.CancelUserSubscription)
	admin.POST("/user-subscriptions/:id/cancel-immediately", usersubs.CancelUserSubscriptionImmediately)
	admin.POST("/user-subscriptions/:id/renewal-failed", usersubs.MarkRenewalFailed)
	admin.POST("/user-subscriptions/:id/billing-date", usersubs.ChangeBillingDate)

	admin.GET("/vendors", vendorsapi.ListVendors)
	admin.POST("/vendors", vendorsapi.CreateVendor)
	admin.GET("/vendors/:id", vendorsapi.GetVendor)
	admin.PUT("/vendors/:id", vendorsapi.UpdateVendor)
	admin.DELETE("/vendors/:id", vendorsapi.DeleteVendor)
	admin.POST("/vendors/:id/activate", vendorsapi.ActivateVendor)

	admin.GET("/vendor-banners", banners.ListBanners)
	admin.POST("/vendor-banners", banners.CreateBanner)
	admin.PUT("/vendor-banners/reorder", banners.ReorderBanners)
	admin.DELETE("/vendor-banners/:id", banners.DeleteBanner)

	admin.GET("/users", usersapi.ListUsers)
	admin.GET("/users/:id", usersapi.GetUser)

	admin.GET("/admin/dashboard", adminapi.Dashboard)
}
