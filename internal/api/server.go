package api

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstack/commerce-analytics-api/internal/metrics"
	"github.com/shopstack/commerce-analytics-api/internal/middleware"
	"github.com/shopstack/commerce-analytics-api/internal/service"
	"github.com/shopstack/commerce-analytics-api/internal/service/pubsub"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

type Server struct {
	tenant     *TenantHandler
	product    *ProductHandler
	customer   *CustomerHandler
	order      *OrderHandler
	payment    *PaymentHandler
	analytics  *AnalyticsHandler
	export     *ExportHandler
	websocket  *WebSocketHandler
	tenantMW   *middleware.TenantMiddleware
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	metrics    *metrics.APIMetrics
}

func NewServer(
	tenantService *service.TenantService,
	productService *service.ProductService,
	customerService *service.CustomerService,
	orderService *service.OrderService,
	paymentService *service.PaymentService,
	analyticsService *service.AnalyticsService,
	exportService *service.ExportService,
	tenantMW *middleware.TenantMiddleware,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	apiMetrics *metrics.APIMetrics,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		tenant:     NewTenantHandler(tenantService),
		product:    NewProductHandler(productService),
		customer:   NewCustomerHandler(customerService),
		order:      NewOrderHandler(orderService, apiMetrics),
		payment:    NewPaymentHandler(paymentService),
		analytics:  NewAnalyticsHandler(analyticsService),
		export:     NewExportHandler(exportService, apiMetrics),
		websocket:  NewWebSocketHandler(logger, pubsub),
		tenantMW:   tenantMW,
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		metrics:    apiMetrics,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.metrics.Middleware())
	api.Use(s.validation.LimitBodySize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.RequireJSON())

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	// Tenant resolution runs on every route; only the tenant-scoped groups
	// below require it to succeed.
	api.Use(s.tenantMW.Resolve())

	{
		// Admin surface: tenant management is cross-tenant and guarded by
		// JWT instead of tenant resolution.
		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.auth.RequireRole("admin"))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PUT("/:id", s.tenant.UpdateTenant)
			tenants.DELETE("/:id", s.tenant.DeactivateTenant)
		}

		scoped := api.Group("", s.tenantMW.RequireTenant(), s.rateLimit.TenantRateLimit())
		{
			products := scoped.Group("/products")
			{
				products.POST("", s.product.CreateProduct)
				products.GET("", s.product.ListProducts)
				products.GET("/low-stock", s.product.ListLowStock)
				products.POST("/reindex", s.product.ReindexProducts)
				products.GET("/:id", s.product.GetProduct)
				products.PUT("/:id", s.product.UpdateProduct)
				products.DELETE("/:id", s.product.DeleteProduct)
			}

			customers := scoped.Group("/customers")
			{
				customers.POST("", s.customer.CreateCustomer)
				customers.GET("", s.customer.ListCustomers)
				customers.GET("/:id", s.customer.GetCustomer)
				customers.PUT("/:id", s.customer.UpdateCustomer)
				customers.DELETE("/:id", s.customer.DeleteCustomer)
			}

			orders := scoped.Group("/orders")
			{
				orders.POST("", s.order.CreateOrder)
				orders.GET("", s.order.ListOrders)
				orders.GET("/stream", s.websocket.HandleWebSocket)
				orders.GET("/:id", s.order.GetOrder)
				orders.PUT("/:id/status", s.order.UpdateOrderStatus)
			}

			payments := scoped.Group("/payments")
			{
				payments.GET("", s.payment.ListPayments)
				payments.POST("/webhook", s.payment.PaymentWebhook)
				payments.GET("/:id", s.payment.GetPayment)
			}

			analytics := scoped.Group("/analytics")
			{
				analytics.GET("/sales", s.analytics.GetSalesSummary)
				analytics.GET("/top-products", s.analytics.GetTopProducts)
				analytics.GET("/stock-events", s.analytics.ListStockEvents)
				analytics.POST("/stock-events", s.analytics.AdjustStock)
			}

			exports := scoped.Group("/exports")
			{
				exports.POST("", s.export.CreateExport)
				exports.GET("", s.export.ListExports)
				exports.GET("/download", s.export.DownloadExport)
				exports.GET("/:id", s.export.GetExport)
			}
		}
	}
}

// StartWebSocketHub starts the hub that fans orders out to stream clients
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
