package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Karthick-Office/ecom/controllers"
	"github.com/Karthick-Office/ecom/middleware"
	"github.com/Karthick-Office/ecom/platform"
	"github.com/Karthick-Office/ecom/services"
)

func InitializeRoutes(router *gin.Engine, jwtKey []byte, bundle *platform.Bundle) {
	customers := services.NewCustomerService(bundle.Identity, bundle.Store, bundle.Blobs)
	products := services.NewProductService(bundle.Store, bundle.Blobs)
	admins := services.NewAdminService(bundle.Identity, bundle.Store, bundle.Blobs)
	deliveryMen := services.NewDeliveryManService(bundle.Identity, bundle.Store, bundle.Blobs)

	customerCtl := controllers.NewCustomerController(customers)
	productCtl := controllers.NewProductController(products)
	adminCtl := controllers.NewAdminController(admins)
	deliveryManCtl := controllers.NewDeliveryManController(deliveryMen)
	recoveryCtl := controllers.NewRecoveryController(bundle.Identity)

	router.POST("/customer/register", customerCtl.Register)
	router.POST("/customer/login", customerCtl.Login)
	router.POST("/customer/login/google", customerCtl.LoginWithGoogle)
	router.POST("/customer/login/facebook", customerCtl.LoginWithFacebook)

	router.POST("/admin/register", adminCtl.Register)
	router.POST("/admin/login", adminCtl.Login)
	router.POST("/admin/login/google", adminCtl.LoginWithGoogle)
	router.POST("/admin/login/facebook", adminCtl.LoginWithFacebook)

	router.POST("/deliveryman/register", deliveryManCtl.Register)

	router.POST("/forgot-password", recoveryCtl.RequestPasswordReset)
	router.POST("/reset-password", recoveryCtl.ResetPassword)

	router.GET("/products", productCtl.GetAll)
	router.GET("/products/:id", productCtl.Get)

	customer := router.Group("/customer")
	customer.Use(middleware.AuthMiddleware(jwtKey, "customer"))
	{
		profile := customer.Group("/profile/:id")
		profile.Use(middleware.RequireSelf())
		profile.PUT("", customerCtl.Update)
		profile.DELETE("", customerCtl.Delete)
		profile.POST("/cart", customerCtl.AddToCart)
		profile.PUT("/cart", customerCtl.UpdateCart)
		profile.POST("/orders", customerCtl.PlaceOrder)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtKey, "admin"))
	{
		profile := admin.Group("/profile/:id")
		profile.Use(middleware.RequireSelf())
		profile.GET("", adminCtl.Get)
		profile.PUT("", adminCtl.Update)
		profile.DELETE("", adminCtl.Delete)

		admin.POST("/products", productCtl.Add)
		admin.PUT("/products/:id", productCtl.Update)
		admin.DELETE("/products/:id", productCtl.Delete)

		admin.POST("/deliverymen/:id/orders", deliveryManCtl.AssignOrder)
		admin.DELETE("/deliverymen/:id", deliveryManCtl.Delete)
	}

	deliveryman := router.Group("/deliveryman")
	deliveryman.Use(middleware.AuthMiddleware(jwtKey, "deliveryman"))
	{
		profile := deliveryman.Group("/profile/:id")
		profile.Use(middleware.RequireSelf())
		profile.PUT("", deliveryManCtl.Update)
		profile.PUT("/custom-fields", deliveryManCtl.UpdateCustomFields)
		profile.POST("/orders/:orderId/complete", deliveryManCtl.CompleteOrder)
		profile.GET("/orders/assigned", deliveryManCtl.GetAssignedOrders)
		profile.GET("/orders/completed", deliveryManCtl.GetCompletedOrders)
		profile.GET("/orders/history", deliveryManCtl.GetDeliveryHistory)
	}
}
