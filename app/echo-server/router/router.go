package router

import (
	"pterostore/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	auth := api.Group("/auth")

	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.GET("/me", handler.Me, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetupOrderRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler, proofHandler *rest.PaymentProofHandler, authRequired echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.POST("", ordersHandler.CreateOrder)
	orders.POST("/payment-proof", proofHandler.Upload)
	orders.GET("/:id", ordersHandler.GetOrderByID)
}

func SetupUserRoutes(api *echo.Group, userHandler *rest.UserHandler, ordersHandler *rest.OrdersHandler, serverHandler *rest.ServerHandler, authRequired echo.MiddlewareFunc) {
	user := api.Group("/user", authRequired)

	user.GET("/orders", ordersHandler.GetUserOrders)
	user.GET("/servers", serverHandler.GetUserServers)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.PUT("/change-password", userHandler.ChangePassword)
}

func SetupSettingsRoutes(api *echo.Group, handler *rest.SettingsHandler) {
	api.GET("/settings/payment", handler.GetPaymentInfo)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
