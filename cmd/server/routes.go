package main

import (
	"github.com/gin-gonic/gin"
	"laundrylink.backend/internal/interfaces/http/handlers"
	"laundrylink.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	merchantHandler *handlers.MerchantHandler
	orderHandler    *handlers.OrderHandler
	bookingHandler  *handlers.BookingHandler
	shopHandler     *handlers.ShopHandler
	pricingHandler  *handlers.PricingHandler
	adminHandler    *handlers.AdminHandler
	authMiddleware  gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Merchant discovery (public)
		v1.GET("/merchants", d.merchantHandler.Discover)
		v1.GET("/merchants/:id", d.merchantHandler.Get)

		// Merchant application and profile (protected)
		merchants := v1.Group("/merchants")
		merchants.Use(d.authMiddleware)
		{
			merchants.POST("/apply", d.merchantHandler.Apply)
			merchants.GET("/status", d.merchantHandler.Status)
			merchants.PUT("/profile", middleware.RequireMerchant(), d.merchantHandler.UpdateProfile)
			merchants.GET("/me/orders", middleware.RequireMerchant(), d.orderHandler.ListForMerchant)
			merchants.GET("/me/bookings", middleware.RequireMerchant(), d.bookingHandler.ListForMerchant)
		}

		// Laundry order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", middleware.IdempotencyMiddleware(), d.orderHandler.Create)
			orders.GET("", d.orderHandler.ListMine)
			orders.GET("/:id", d.orderHandler.Get)
			orders.GET("/:id/receipt", d.orderHandler.Receipt)
			orders.GET("/:id/booking", d.bookingHandler.GetForOrder)
			orders.PATCH("/:id/status", middleware.RequireMerchant(), d.orderHandler.UpdateStatus)
			orders.POST("/:id/cancel", d.orderHandler.Cancel)
		}

		// Staged booking workflow and booking records (protected)
		bookings := v1.Group("/bookings")
		bookings.Use(d.authMiddleware)
		{
			bookings.POST("/draft", d.bookingHandler.StartDraft)
			bookings.GET("/draft", d.bookingHandler.GetDraft)
			bookings.PUT("/draft/merchant", d.bookingHandler.SelectMerchant)
			bookings.POST("/draft/next", d.bookingHandler.Next)
			bookings.POST("/draft/back", d.bookingHandler.Back)
			bookings.PUT("/draft/details", d.bookingHandler.SetServiceDetails)
			bookings.PUT("/draft/slot", d.bookingHandler.SetTimeSlot)
			bookings.POST("/draft/submit", middleware.IdempotencyMiddleware(), d.bookingHandler.Submit)

			bookings.POST("", middleware.IdempotencyMiddleware(), d.bookingHandler.Create)
			bookings.GET("", d.bookingHandler.ListMine)
			bookings.GET("/:id", d.bookingHandler.Get)
			bookings.PATCH("/:id/status", middleware.RequireMerchant(), d.bookingHandler.UpdateStatus)
			bookings.POST("/:id/cancel", d.bookingHandler.Cancel)
		}

		// Pricing table (public read)
		v1.GET("/pricing", d.pricingHandler.ListRules)

		// Price quotes (protected)
		quotes := v1.Group("/quotes")
		quotes.Use(d.authMiddleware)
		{
			quotes.POST("", d.pricingHandler.RequestQuote)
			quotes.GET("", d.pricingHandler.ListQuotes)
			quotes.GET("/:id", d.pricingHandler.GetQuote)
		}

		// Accessory shop (public catalogue, protected orders)
		shop := v1.Group("/shop")
		{
			shop.GET("/products", d.shopHandler.ListProducts)
			shop.GET("/products/:id", d.shopHandler.GetProduct)

			shopOrders := shop.Group("/orders")
			shopOrders.Use(d.authMiddleware)
			{
				shopOrders.POST("", middleware.IdempotencyMiddleware(), d.shopHandler.CreateOrder)
				shopOrders.GET("", d.shopHandler.ListMyOrders)
				shopOrders.GET("/:id", d.shopHandler.GetOrder)
			}
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/stats", d.adminHandler.GetStats)

			admin.GET("/merchants", d.adminHandler.ListMerchants)
			admin.POST("/merchants/:id/approve", d.adminHandler.ApproveMerchant)
			admin.POST("/merchants/:id/reject", d.adminHandler.RejectMerchant)
			admin.POST("/merchants/:id/suspend", d.adminHandler.SuspendMerchant)

			admin.PUT("/pricing", d.pricingHandler.UpsertRule)

			admin.POST("/shop/products", d.shopHandler.CreateProduct)
			admin.PUT("/shop/products/:id", d.shopHandler.UpdateProduct)
			admin.DELETE("/shop/products/:id", d.shopHandler.DeleteProduct)

			admin.GET("/shop/orders", d.shopHandler.ListAllOrders)
			admin.GET("/shop/orders/stream", d.shopHandler.StreamOrders)
			admin.PATCH("/shop/orders/:id/status", d.shopHandler.UpdateOrderStatus)
		}
	}
}
