package routes

import (
	"asphaltworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathLoads  = "/loads"
	PathMixes  = "/mixes"
)

func addStorefrontRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, loadHandler *handlers.LoadHandler, mixHandler *handlers.AsphaltMixHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.POST("/:id/complete", orderHandler.CompleteOrder)
		orders.GET("/:id/loads", loadHandler.GetOrderLoads)
		orders.GET("/:id/progress", loadHandler.GetOrderProgress)
	}

	loads := rg.Group(PathLoads)
	{
		loads.POST("", loadHandler.CreateLoad)
	}

	mixes := rg.Group(PathMixes)
	{
		mixes.POST("", mixHandler.CreateMix)
		mixes.GET("", mixHandler.ListMixes)
		mixes.GET("/:mix_id", mixHandler.GetMix)
		mixes.PATCH("/:mix_id", mixHandler.PatchMix)
	}
}
