package routes

import (
	"github.com/BETACRD01/delibery-sub000/configs"
	"github.com/BETACRD01/delibery-sub000/controllers"
	"github.com/BETACRD01/delibery-sub000/events"
	"github.com/BETACRD01/delibery-sub000/middlewares"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/BETACRD01/delibery-sub000/ws"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	chatRepo := repository.NewChatRepository(db)
	ruleRepo := repository.NewCommissionRuleRepository(db)
	userRepo := repository.NewUserRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	providerRepo := repository.NewProviderRepository(db)

	// Services
	dispatcher := events.NewDispatcher()
	inventory := services.NewInventoryService(productRepo)
	numbers := services.NewOrderNumberService(counterRepo, cfg.OrderPrefix)
	settlement := services.NewSettlementService(ruleRepo, cfg)
	orderSvc := services.NewOrderService(db, cfg,
		orderRepo, cartRepo, providerRepo, courierRepo, paymentRepo,
		inventory, numbers, settlement, dispatcher)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	authSvc := services.NewAuthService(userRepo, courierRepo, cfg.JWTSecret, cfg.JWTTTL)
	courierSvc := services.NewCourierService(db, courierRepo, orderRepo)
	chatSvc := services.NewChatService(chatRepo)
	catalogSvc := services.NewCatalogService(productRepo, providerRepo)

	// Websocket hubs + lifecycle side effects
	chatHub := ws.NewChatHub(chatSvc)
	go chatHub.Run()
	orderHub := ws.NewOrderHub()
	services.RegisterOrderHandlers(dispatcher, db, chatSvc, orderHub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	providerCtrl := controllers.NewProviderController(orderSvc, catalogSvc)
	courierCtrl := controllers.NewCourierController(orderSvc, courierSvc)
	paymentCtrl := controllers.NewPaymentController(paymentRepo, orderRepo)
	chatCtrl := controllers.NewChatController(chatSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	adminCtrl := controllers.NewAdminController(db, orderSvc, ruleRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/me/password", authCtrl.ChangePassword)
	}

	// Public catalog
	r.GET("/products", catalogCtrl.List)
	r.GET("/products/:id", catalogCtrl.Detail)

	// Cart + orders (client)
	client := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		client.GET("/cart", cartCtrl.Get)
		client.POST("/cart/items", cartCtrl.Add)
		client.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		client.DELETE("/cart/items/:id", cartCtrl.Remove)
		client.DELETE("/cart", cartCtrl.Clear)

		client.POST("/orders/checkout", orderCtrl.Checkout)
		client.POST("/orders/direct", orderCtrl.CreateDirect)
		client.GET("/orders", orderCtrl.ListForMe)
		client.GET("/orders/:id", orderCtrl.Detail)
		client.POST("/orders/:id/cancel", orderCtrl.Cancel)
		client.GET("/orders/:id/payment", paymentCtrl.ForOrder)

		client.GET("/chat/rooms", chatCtrl.Rooms)
		client.GET("/chat/rooms/:id/messages", chatCtrl.Messages)
		client.POST("/chat/rooms/:id/messages", chatCtrl.Send)
	}

	// Provider
	provider := r.Group("/provider", middlewares.AuthMiddleware(cfg.JWTSecret, "provider", "admin"))
	{
		provider.GET("/orders", providerCtrl.ListOrders)
		provider.POST("/orders/:id/confirm", providerCtrl.ConfirmOrder)
		provider.GET("/products", providerCtrl.ListProducts)
		provider.POST("/products", providerCtrl.CreateProduct)
		provider.PATCH("/products/:id", providerCtrl.UpdateProduct)
	}

	// Courier
	courier := r.Group("/courier", middlewares.AuthMiddleware(cfg.JWTSecret, "courier", "admin"))
	{
		courier.GET("/orders/available", courierCtrl.AvailableOrders)
		courier.POST("/orders/:id/accept", courierCtrl.Accept)
		courier.POST("/orders/:id/pickup", courierCtrl.Pickup)
		courier.POST("/orders/:id/deliver", courierCtrl.Deliver)
		courier.PATCH("/availability", courierCtrl.SetAvailability)
		courier.GET("/status", courierCtrl.Status)
		courier.GET("/work", courierCtrl.CurrentWork)
		courier.PUT("/profile", courierCtrl.UpsertProfile)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
		admin.POST("/orders/:id/cancel", adminCtrl.CancelOrder)
		admin.GET("/commission-rules", adminCtrl.CommissionRules)
		admin.PUT("/commission-rules", adminCtrl.UpsertCommissionRule)
		admin.POST("/providers", adminCtrl.CreateProvider)
	}

	// Websockets
	wsGroup := r.Group("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret))
	{
		wsGroup.GET("/chat/:roomId", chatHub.HandleWebSocket)
		wsGroup.GET("/orders/:id", orderHub.HandleWebSocket)
	}
}
