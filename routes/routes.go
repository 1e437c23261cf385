package routes

import (
	"github.com/julirosales079/parrillerosfast/configs"
	"github.com/julirosales079/parrillerosfast/controllers"
	"github.com/julirosales079/parrillerosfast/middlewares"
	"github.com/julirosales079/parrillerosfast/repository"
	"github.com/julirosales079/parrillerosfast/services"
	"github.com/julirosales079/parrillerosfast/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// repositories
	menuRepo := repository.NewMenuRepository(db)
	locRepo := repository.NewLocationRepository(db)
	kvRepo := repository.NewKVRepository(db)

	// services
	counter := services.NewOrderCounter(kvRepo)
	sessions := services.NewSessionService(counter)
	receipts := services.NewReceiptService()
	cartSvc := services.NewCartService(menuRepo, sessions)
	menuSvc := services.NewMenuService(menuRepo)
	checkoutSvc := services.NewCheckoutService(locRepo, sessions, receipts)
	pdfSvc := services.NewPDFService()
	printSvc := services.NewPrintService()

	// cart event stream: every new session aggregate feeds the hub
	hub := ws.NewCartHub()
	go hub.Run()
	sessions.OnCreate = func(sid string, agg *services.OrderAggregate) {
		agg.Subscribe(func(ev services.CartEvent) { hub.Broadcast(sid, ev) })
	}

	// controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	locCtrl := controllers.NewLocationController(locRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(checkoutSvc, sessions)
	receiptCtrl := controllers.NewReceiptController(sessions, pdfSvc, printSvc)
	staffCtrl := controllers.NewStaffController(counter)

	// catalog (public, no session needed)
	r.GET("/menu/categories", menuCtrl.Categories)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/locations", locCtrl.List)
	r.GET("/locations/:slug", locCtrl.Detail)

	// kiosk session scope
	s := r.Group("/", middlewares.SessionMiddleware(cfg.JWTSecret))
	{
		s.GET("/cart", cartCtrl.Get)
		s.POST("/cart/items", cartCtrl.Add)
		s.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
		s.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		s.DELETE("/cart", cartCtrl.Clear)

		s.POST("/orders/checkout/delivery", orderCtrl.CheckoutDelivery)
		s.POST("/orders/checkout/pickup", orderCtrl.CheckoutPickup)
		s.GET("/orders/current", orderCtrl.Current)
		s.GET("/orders/current/ticket", receiptCtrl.Ticket)
		s.GET("/orders/current/ticket.pdf", receiptCtrl.TicketPDF)
		s.GET("/orders/current/print", receiptCtrl.PrintView)

		s.GET("/ws/cart", hub.HandleWS)
	}

	// staff (PIN gated)
	staff := r.Group("/staff", middlewares.StaffMiddleware(cfg.StaffPinHash))
	{
		staff.GET("/counter", staffCtrl.GetCounter)
		staff.PUT("/counter", staffCtrl.PutCounter)
	}
}
