package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	JoinEvent(c *ginext.Context)
	CancelParticipation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		events := api.Group("/events", authMW)
		{
			events.GET("", h.ListEvents)
			events.POST("", h.CreateEvent)
			events.POST("/:id/cancel", h.CancelEvent)
			events.POST("/:id/participate", h.JoinEvent)
			events.DELETE("/:id/participate", h.CancelParticipation)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
