// Package http exposes the order-management operations as a JSON API on
// echo. Routes and parameter binding live in api.go, the document they
// implement in openapi.json.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kleberrossi/Procman/internal/core/application/usecases/commands"
	"github.com/kleberrossi/Procman/internal/core/application/usecases/queries"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/services"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// UserIDHeader carries the id of the acting user. Requests without it are
// recorded with no user, like system actions.
const UserIDHeader = "X-User-ID"

// CommandHandlers groups the write side.
type CommandHandlers struct {
	CreateOrder                commands.CreateOrderCommandHandler
	AddItem                    commands.AddItemCommandHandler
	UpdateItem                 commands.UpdateItemCommandHandler
	DeleteItem                 commands.DeleteItemCommandHandler
	UpdateOrderHeader          commands.UpdateOrderHeaderCommandHandler
	ChangeStatus               commands.ChangeStatusCommandHandler
	RecalculateTotals          commands.RecalculateTotalsCommandHandler
	CreateProductionOrder      commands.CreateProductionOrderCommandHandler
	AddQualityInspection       commands.AddQualityInspectionCommandHandler
	CreateShipment             commands.CreateShipmentCommandHandler
	ReleaseShipment            commands.ReleaseShipmentCommandHandler
	CreateClient               commands.CreateClientCommandHandler
	CreatePackageSpecification commands.CreatePackageSpecificationCommandHandler
}

// QueryHandlers groups the read side.
type QueryHandlers struct {
	GetOrder               queries.GetOrderQueryHandler
	ListOrders             queries.ListOrdersQueryHandler
	GetOrderMetrics        queries.GetOrderMetricsQueryHandler
	GetOrderLogs           queries.GetOrderLogsQueryHandler
	ListProductionOrders   queries.ListProductionOrdersQueryHandler
	ListQualityInspections queries.ListQualityInspectionsQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	commands  CommandHandlers
	queries   QueryHandlers
	estimator services.Estimator
	metrics   *metrics.Metrics
}

func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	estimator services.Estimator,
	m *metrics.Metrics,
) *Server {
	return &Server{
		commands:  commandHandlers,
		queries:   queryHandlers,
		estimator: estimator,
		metrics:   m,
	}
}

var _ ServerInterface = (*Server)(nil)

type CreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

type ShipmentResponse struct {
	ID     kernel.UUID `json:"id"`
	Status string      `json:"status"`
}

type HeaderUpdateResponse struct {
	Applied []string          `json:"aplicados"`
	Ignored []string          `json:"ignorados"`
	Order   queries.OrderView `json:"pedido"`
}

type ItemUpdateResponse struct {
	Applied []string         `json:"aplicados"`
	Blocked []string         `json:"bloqueados"`
	Item    queries.ItemView `json:"item"`
}

type RecalculateResponse struct {
	Changed bool              `json:"alterado"`
	Order   queries.OrderView `json:"pedido"`
}

func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	raw := strings.TrimSpace(ctx.Request().Header.Get(UserIDHeader))
	if raw == "" {
		return kernel.SystemActor(), nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause(UserIDHeader, err)
	}
	return kernel.NewUserActor(id)
}

func bindBody(ctx echo.Context, target any) error {
	if err := json.NewDecoder(ctx.Request().Body).Decode(target); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

func (s *Server) loadOrder(ctx echo.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	return s.queries.GetOrder.Handle(ctx.Request().Context(), query)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	filter := queries.ListOrdersFilter{}
	if params.Status != nil {
		filter.Status = *params.Status
	}
	if params.ClientID != nil {
		id, err := toKernelUUID("cliente_id", *params.ClientID)
		if err != nil {
			return err
		}
		filter.ClientID = &id
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	if params.Offset != nil {
		filter.Offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return err
	}

	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}
	clientID, err := toKernelUUID("cliente_id", req.ClientID)
	if err != nil {
		return err
	}
	header, err := req.header()
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, header, req.TotalPrice, actor)
	if err != nil {
		return err
	}
	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	created, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created.Order)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}

	result, err := s.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, result)
}

// UpdateOrderHeader handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrderHeader(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body map[string]json.RawMessage
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	changes, err := decodeChanges(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderHeaderCommand(id, changes, actor)
	if err != nil {
		return err
	}
	result, err := s.commands.UpdateOrderHeader.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	updated, err := s.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, HeaderUpdateResponse{
		Applied: nonNil(result.Applied),
		Ignored: nonNil(result.Ignored),
		Order:   updated.Order,
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeStatusCommand(id, req.Status, actor)
	if err != nil {
		return err
	}
	if err = s.commands.ChangeStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	s.metrics.StatusTransitions.WithLabelValues(cmd.Target().String()).Inc()

	updated, err := s.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated.Order)
}

// RecalculateOrderTotals handles POST /api/v1/orders/{orderId}/recalculate.
func (s *Server) RecalculateOrderTotals(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecalculateTotalsCommand(id, actor)
	if err != nil {
		return err
	}
	changed, err := s.commands.RecalculateTotals.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	current, err := s.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, RecalculateResponse{Changed: changed, Order: current.Order})
}

// GetOrderLogs handles GET /api/v1/orders/{orderId}/logs.
func (s *Server) GetOrderLogs(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderLogsQuery(id)
	if err != nil {
		return err
	}

	logs, err := s.queries.GetOrderLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, logs)
}

// GetOrderMetrics handles GET /api/v1/orders/{orderId}/metrics.
func (s *Server) GetOrderMetrics(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderMetricsQuery(id)
	if err != nil {
		return err
	}

	m, err := s.queries.GetOrderMetrics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, m)
}

// AddItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddItem(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}
	terms, err := req.terms()
	if err != nil {
		return err
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(id, itemID, req.PackageCode, req.Revision, terms, actor)
	if err != nil {
		return err
	}
	if err = s.commands.AddItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	item, err := s.loadItem(ctx, id, itemID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (s *Server) loadItem(ctx echo.Context, orderID, itemID kernel.UUID) (queries.ItemView, error) {
	current, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return queries.ItemView{}, err
	}
	for _, item := range current.Order.Items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return queries.ItemView{}, errs.NewObjectNotFoundError("item", itemID.String())
}

// UpdateItem handles PATCH /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) UpdateItem(ctx echo.Context, orderID openapi_types.UUID, itemID openapi_types.UUID) error {
	oid, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	iid, err := toKernelUUID("itemId", itemID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body map[string]json.RawMessage
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	changes, err := decodeChanges(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateItemCommand(oid, iid, changes, actor)
	if err != nil {
		return err
	}
	result, err := s.commands.UpdateItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	item, err := s.loadItem(ctx, oid, iid)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ItemUpdateResponse{
		Applied: nonNil(result.Applied),
		Blocked: nonNil(result.Blocked),
		Item:    item,
	})
}

// DeleteItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) DeleteItem(ctx echo.Context, orderID openapi_types.UUID, itemID openapi_types.UUID) error {
	oid, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	iid, err := toKernelUUID("itemId", itemID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteItemCommand(oid, iid, actor)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListProductionOrders handles GET /api/v1/orders/{orderId}/production-orders.
func (s *Server) ListProductionOrders(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	if _, err = s.loadOrder(ctx, id); err != nil {
		return err
	}

	query, err := queries.NewListProductionOrdersQuery(id)
	if err != nil {
		return err
	}
	list, err := s.queries.ListProductionOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, list)
}

// CreateProductionOrder handles POST /api/v1/orders/{orderId}/production-orders.
func (s *Server) CreateProductionOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req CreateProductionOrderRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	productionOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductionOrderCommand(id, productionOrderID, req.parameters(), actor)
	if err != nil {
		return err
	}
	if err = s.commands.CreateProductionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	s.metrics.ProductionOrders.Inc()

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productionOrderID})
}

// ListQualityInspections handles GET /api/v1/orders/{orderId}/qc.
func (s *Server) ListQualityInspections(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	if _, err = s.loadOrder(ctx, id); err != nil {
		return err
	}

	query, err := queries.NewListQualityInspectionsQuery(id)
	if err != nil {
		return err
	}
	list, err := s.queries.ListQualityInspections.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, list)
}

// AddQualityInspection handles POST /api/v1/orders/{orderId}/qc.
func (s *Server) AddQualityInspection(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req AddQualityInspectionRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	inspectionID := kernel.NewUUID()
	cmd, err := commands.NewAddQualityInspectionCommand(id, inspectionID, req.Kind, req.findings(), actor)
	if err != nil {
		return err
	}
	if err = s.commands.AddQualityInspection.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: inspectionID})
}

// CreateShipment handles POST /api/v1/orders/{orderId}/shipments.
func (s *Server) CreateShipment(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req CreateShipmentRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(id, shipmentID, req.Modal, req.details(), actor)
	if err != nil {
		return err
	}
	if err = s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ShipmentResponse{ID: shipmentID, Status: "PENDENTE"})
}

// ReleaseShipment handles POST /api/v1/shipments/{shipmentId}/release.
func (s *Server) ReleaseShipment(ctx echo.Context, shipmentID openapi_types.UUID) error {
	id, err := toKernelUUID("shipmentId", shipmentID)
	if err != nil {
		return err
	}
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReleaseShipmentCommand(id, actor)
	if err != nil {
		return err
	}
	if err = s.commands.ReleaseShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ShipmentResponse{ID: id, Status: "LIBERADA"})
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req CreateClientRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, req.LegalName, req.CNPJ, req.InternalCode)
	if err != nil {
		return err
	}
	if err = s.commands.CreateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: clientID})
}

// CreatePackageSpecification handles POST /api/v1/packages.
func (s *Server) CreatePackageSpecification(ctx echo.Context) error {
	var req CreatePackageSpecificationRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	data, err := req.data()
	if err != nil {
		return err
	}

	specID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageSpecificationCommand(specID, data)
	if err != nil {
		return err
	}
	if err = s.commands.CreatePackageSpecification.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: specID})
}

// CalculateUnitMass handles POST /api/v1/calc/unit-mass.
func (s *Server) CalculateUnitMass(ctx echo.Context) error {
	var req UnitMassRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	mass := s.estimator.UnitMassKg(services.FilmDimensions{
		Material:    req.Material,
		ThicknessUm: req.ThicknessUm,
		WidthMm:     req.WidthMm,
		HeightMm:    req.HeightMm,
		GussetMm:    req.GussetMm,
		ExtraFactor: req.ExtraFactor,
	})
	return ctx.JSON(http.StatusOK, map[string]decimal.Decimal{"massa_unidade_kg": mass.Round(6)})
}

// CalculateUnitsFromWeight handles POST /api/v1/calc/units-from-weight.
func (s *Server) CalculateUnitsFromWeight(ctx echo.Context) error {
	var req UnitsFromWeightRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	units := s.estimator.UnitsFromWeight(req.WeightKg, req.UnitMassKg)
	return ctx.JSON(http.StatusOK, map[string]int64{"unidades_estimadas": units.IntPart()})
}

// CalculateMinimumUnits handles POST /api/v1/calc/minimum-units.
func (s *Server) CalculateMinimumUnits(ctx echo.Context) error {
	var req MinimumUnitsRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	minimum := s.estimator.MinimumUnits(req.Requested, req.TolerancePercent)
	return ctx.JSON(http.StatusOK, map[string]int64{"unidades_minimas": minimum})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
