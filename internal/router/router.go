package router

import (
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/config"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/handler"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/middleware"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/service"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← State containers / Services ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)

	// ── State containers (one per entity family) ─────────────────────────────
	productosState := state.NewProductos(productoRepo)
	clientesState := state.NewClientes(clienteRepo)
	ventasState := state.NewVentas(ventaRepo)
	movimientosState := state.NewMovimientos(movimientoRepo)

	// ── Services ─────────────────────────────────────────────────────────────
	reporteSvc := service.NewReporteService(ventaRepo, rdb)
	inventarioSvc := service.NewInventarioService(productoRepo, movimientoRepo, productosState, movimientosState)
	ventaSvc := service.NewVentaService(
		ventaRepo, productoRepo, clienteRepo, movimientoRepo,
		productosState, movimientosState, ventasState, reporteSvc,
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productosState, productoRepo, inventarioSvc)
	clientesH := handler.NewClientesHandler(clientesState, clienteRepo)
	ventasH := handler.NewVentasHandler(ventaSvc, ventasState, ventaRepo)
	movimientosH := handler.NewMovimientosHandler(inventarioSvc, movimientosState)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		prods := v1.Group("/productos")
		{
			prods.GET("", productosH.Listar)
			prods.GET("/alertas", productosH.Alertas)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.GET("/cuil/:cuil", clientesH.ObtenerPorCUIL)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.POST("", clientesH.Crear)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.POST("", ventasH.Registrar)
		}

		movimientos := v1.Group("/movimientos")
		{
			movimientos.GET("", movimientosH.Listar)
			movimientos.POST("", movimientosH.Ajustar)
		}

		v1.GET("/reportes/mensual/:mes", reportesH.Mensual)
	}

	return r
}
