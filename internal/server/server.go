package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/quickstep/internal/address"
	addressdomain "github.com/smallbiznis/quickstep/internal/address/domain"
	"github.com/smallbiznis/quickstep/internal/config"
	"github.com/smallbiznis/quickstep/internal/observability"
	obsmiddleware "github.com/smallbiznis/quickstep/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/quickstep/internal/observability/metrics"
	obstracing "github.com/smallbiznis/quickstep/internal/observability/tracing"
	"github.com/smallbiznis/quickstep/internal/order"
	orderdomain "github.com/smallbiznis/quickstep/internal/order/domain"
	"github.com/smallbiznis/quickstep/internal/product"
	productdomain "github.com/smallbiznis/quickstep/internal/product/domain"
	"github.com/smallbiznis/quickstep/internal/user"
	userdomain "github.com/smallbiznis/quickstep/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	user.Module,
	product.Module,
	address.Module,
	order.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	userSvc    userdomain.Service
	productSvc productdomain.Service
	addressSvc addressdomain.Service
	orderSvc   orderdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	UserSvc    userdomain.Service
	ProductSvc productdomain.Service
	AddressSvc addressdomain.Service
	OrderSvc   orderdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		userSvc:    p.UserSvc,
		productSvc: p.ProductSvc,
		addressSvc: p.AddressSvc,
		orderSvc:   p.OrderSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	orders := api.Group("/orders")
	{
		orders.GET("/list", s.ListOrders)
		orders.GET("/show/:id", s.GetOrderByID)
		orders.GET("/owner/:ownerId", s.ListOrdersByOwner)
		orders.GET("/search", s.SearchOrders)
		orders.POST("/add", s.CreateOrder)
		orders.PUT("/edit", s.UpdateOrder)
		orders.DELETE("/delete/:id", s.DeleteOrder)
	}

	users := api.Group("/users")
	{
		users.GET("/list", s.ListUsers)
		users.GET("/show/:id", s.GetUserByID)
		users.POST("/add", s.CreateUser)
		users.PUT("/edit", s.UpdateUser)
		users.DELETE("/delete/:id", s.DeleteUser)
	}

	products := api.Group("/products")
	{
		products.GET("/list", s.ListProducts)
		products.GET("/show/:id", s.GetProductByID)
		products.POST("/add", s.CreateProduct)
		products.PUT("/edit", s.UpdateProduct)
		products.DELETE("/delete/:id", s.DeleteProduct)
	}

	addresses := api.Group("/addresses")
	{
		addresses.GET("/list", s.ListAddresses)
		addresses.GET("/show/:id", s.GetAddressByID)
		addresses.GET("/country/:country", s.ListAddressesByCountry)
		addresses.POST("/add", s.CreateAddress)
		addresses.PUT("/edit", s.UpdateAddress)
		addresses.DELETE("/delete/:id", s.DeleteAddress)
	}
}

func created(c *gin.Context, resource, id string, data any) {
	c.Header("Location", "/api/"+resource+"/show/"+id)
	c.JSON(http.StatusCreated, gin.H{"data": data})
}
