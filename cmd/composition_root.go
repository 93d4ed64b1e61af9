package cmd

import (
	httpin "github.com/kleberrossi/Procman/internal/adapters/in/http"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/auditlogrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/orderrepo"
	"github.com/kleberrossi/Procman/internal/core/application/usecases/commands"
	"github.com/kleberrossi/Procman/internal/core/application/usecases/queries"
	"github.com/kleberrossi/Procman/internal/core/domain/services"
	"github.com/kleberrossi/Procman/internal/jobs"
	"github.com/kleberrossi/Procman/internal/pkg/clock"
	"github.com/kleberrossi/Procman/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.SystemClock{},
		registry:   registry,
		metrics:    metrics.New(registry),
		logger:     logger,
	}
}

// FuncFactory adapts a function to any of the unit of work factory
// interfaces of the commands package.
type FuncFactory[T any] func() T

func (f FuncFactory[T]) Create() T {
	return f()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncFactory[commands.OrderUoW](func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderCatalogUoWFactory() commands.OrderCatalogUoWFactory {
	return FuncFactory[commands.OrderCatalogUoW](func() commands.OrderCatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) productionUoWFactory() commands.ProductionUoWFactory {
	return FuncFactory[commands.ProductionUoW](func() commands.ProductionUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFactory[commands.FulfillmentUoW](func() commands.FulfillmentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncFactory[commands.CatalogUoW](func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderCatalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderCatalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() commands.DeleteItemCommandHandler {
	return commands.NewDeleteItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderHeaderCommandHandler() commands.UpdateOrderHeaderCommandHandler {
	return commands.NewUpdateOrderHeaderCommandHandler(c.orderCatalogUoWFactory())
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecalculateTotalsCommandHandler() commands.RecalculateTotalsCommandHandler {
	return commands.NewRecalculateTotalsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductionOrderCommandHandler() commands.CreateProductionOrderCommandHandler {
	return commands.NewCreateProductionOrderCommandHandler(
		c.productionUoWFactory(), services.NewProductionPlanner(), c.clock)
}

func (c *CompositionRoot) CreateAddQualityInspectionCommandHandler() commands.AddQualityInspectionCommandHandler {
	return commands.NewAddQualityInspectionCommandHandler(c.fulfillmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.fulfillmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReleaseShipmentCommandHandler() commands.ReleaseShipmentCommandHandler {
	return commands.NewReleaseShipmentCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreatePackageSpecificationCommandHandler() commands.CreatePackageSpecificationCommandHandler {
	return commands.NewCreatePackageSpecificationCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		orderrepo.NewGormOrderReader(c.gormDB), auditlogrepo.NewGormAuditLogRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderLogsQueryHandler() queries.GetOrderLogsQueryHandler {
	return queries.NewGetOrderLogsQueryHandler(
		orderrepo.NewGormOrderReader(c.gormDB), auditlogrepo.NewGormAuditLogRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderMetricsQueryHandler() queries.GetOrderMetricsQueryHandler {
	return queries.NewGetOrderMetricsQueryHandler(
		orderrepo.NewGormOrderReader(c.gormDB), services.NewMetricsCalculator())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductionOrdersQueryHandler() queries.ListProductionOrdersQueryHandler {
	return queries.NewListProductionOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListQualityInspectionsQueryHandler() queries.ListQualityInspectionsQueryHandler {
	return queries.NewListQualityInspectionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:                c.CreateCreateOrderCommandHandler(),
			AddItem:                    c.CreateAddItemCommandHandler(),
			UpdateItem:                 c.CreateUpdateItemCommandHandler(),
			DeleteItem:                 c.CreateDeleteItemCommandHandler(),
			UpdateOrderHeader:          c.CreateUpdateOrderHeaderCommandHandler(),
			ChangeStatus:               c.CreateChangeStatusCommandHandler(),
			RecalculateTotals:          c.CreateRecalculateTotalsCommandHandler(),
			CreateProductionOrder:      c.CreateCreateProductionOrderCommandHandler(),
			AddQualityInspection:       c.CreateAddQualityInspectionCommandHandler(),
			CreateShipment:             c.CreateCreateShipmentCommandHandler(),
			ReleaseShipment:            c.CreateReleaseShipmentCommandHandler(),
			CreateClient:               c.CreateCreateClientCommandHandler(),
			CreatePackageSpecification: c.CreateCreatePackageSpecificationCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrder:               c.CreateGetOrderQueryHandler(),
			ListOrders:             c.CreateListOrdersQueryHandler(),
			GetOrderMetrics:        c.CreateGetOrderMetricsQueryHandler(),
			GetOrderLogs:           c.CreateGetOrderLogsQueryHandler(),
			ListProductionOrders:   c.CreateListProductionOrdersQueryHandler(),
			ListQualityInspections: c.CreateListQualityInspectionsQueryHandler(),
		},
		services.NewEstimator(),
		c.metrics,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), c.metrics, c.registry, c.logger)
}

func (c *CompositionRoot) CreateReconcileTotalsJob() *jobs.ReconcileTotalsJob {
	handler := c.CreateRecalculateTotalsCommandHandler()
	return jobs.NewReconcileTotalsJob(
		orderrepo.NewGormOrderReader(c.gormDB),
		&handler,
		c.config.ReconcileSchedule,
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileTotalsJob())
}
