// Package api wires the HTTP routes of the AMCMart API.
//
//	@title			AMCMart API
//	@version		1.0
//	@description	Product catalog, orders, promo codes and dashboard statistics.
//	@BasePath		/api
//	@securityDefinitions.basic	AdminAuth
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/amcmart-api/docs"
	"github.com/MikeMC777/amcmart-api/internal/health"
	"github.com/MikeMC777/amcmart-api/internal/httpx"
	"github.com/MikeMC777/amcmart-api/internal/order"
	"github.com/MikeMC777/amcmart-api/internal/product"
	"github.com/MikeMC777/amcmart-api/internal/promo"
	"github.com/MikeMC777/amcmart-api/internal/validation"
)

func init() {
	// Prices and totals go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Intake accepts new orders. *order.Pipeline implements it.
type Intake interface {
	Submit(ctx context.Context, req order.CreateOrderRequest) (*order.Receipt, error)
	Depth() int
	Mode() order.Mode
}

type HealthChecker interface {
	Check(ctx context.Context) health.Report
}

// WorkerStats is implemented by *order.Worker; nil in sync mode.
type WorkerStats interface {
	Stats() order.WorkerStats
}

// LiveFeed serves the WebSocket order feed. *notify.Hub implements it.
type LiveFeed interface {
	Serve(c *gin.Context)
}

type Deps struct {
	Products product.Repository
	Promos   promo.Repository
	Checker  order.PromoChecker
	Orders   order.Repository
	Intake   Intake
	Health   HealthChecker
	Worker   WorkerStats
	Feed     LiveFeed

	Env               string
	AdminUser         string
	AdminPasswordHash string
	Log               logrus.FieldLogger
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	v := validation.New()

	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Recovery(d.Log), httpx.Logger(d.Log), httpx.CORS())
	r.NoRoute(func(c *gin.Context) {
		httpx.Fail(c, http.StatusNotFound, "Endpoint not found")
	})

	admin := httpx.AdminAuth(d.AdminUser, d.AdminPasswordHash)
	g := r.Group("/api")

	g.GET("/health", healthHandler(d.Health, d.Intake, d.Worker, d.Env))

	g.GET("/products", listProductsHandler(d.Products))
	g.GET("/products/:id", getProductHandler(d.Products))
	g.POST("/products", admin, createProductHandler(d.Products, v))
	g.PUT("/products/:id", admin, updateProductHandler(d.Products, v))
	g.DELETE("/products/:id", admin, deleteProductHandler(d.Products))

	g.GET("/orders", listOrdersHandler(d.Orders))
	g.GET("/orders/:id", getOrderHandler(d.Orders))
	g.POST("/orders", createOrderHandler(d.Intake))
	g.PUT("/orders/:id/status", admin, updateOrderStatusHandler(d.Orders, v))

	g.GET("/customers", listCustomersHandler(d.Orders))
	g.GET("/dashboard/stats", dashboardStatsHandler(d.Orders, d.Intake))

	g.GET("/promocodes", listPromosHandler(d.Promos))
	g.GET("/promocodes/:id", getPromoHandler(d.Promos))
	g.POST("/promocodes", admin, createPromoHandler(d.Promos, v))
	g.PUT("/promocodes/:id", admin, updatePromoHandler(d.Promos, v))
	g.DELETE("/promocodes/:id", admin, deletePromoHandler(d.Promos))
	g.POST("/promo/validate", validatePromoHandler(d.Checker, v))

	if d.Feed != nil {
		g.GET("/ws/orders", d.Feed.Serve)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// bindJSON decodes the body and runs struct validation. It writes the
// 400 response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, v *validatorv10.Validate, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httpx.Fail(c, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	if err := validation.Check(v, dst); err != nil {
		httpx.Fail(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func storeError(c *gin.Context, err error) {
	_ = c.Error(err)
	httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
}
