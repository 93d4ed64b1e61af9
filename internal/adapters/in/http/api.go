package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// ListOrdersParams are the query parameters of GET /orders.
type ListOrdersParams struct {
	Status   *string             `form:"status,omitempty" json:"status,omitempty"`
	ClientID *openapi_types.UUID `form:"cliente_id,omitempty" json:"cliente_id,omitempty"`
	Limit    *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Offset   *int                `form:"offset,omitempty" json:"offset,omitempty"`
}

// ServerInterface lists the operations of openapi.json, one method per
// operationId.
type ServerInterface interface {
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	CreateOrder(ctx echo.Context) error
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	UpdateOrderHeader(ctx echo.Context, orderID openapi_types.UUID) error
	ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error
	RecalculateOrderTotals(ctx echo.Context, orderID openapi_types.UUID) error
	GetOrderLogs(ctx echo.Context, orderID openapi_types.UUID) error
	GetOrderMetrics(ctx echo.Context, orderID openapi_types.UUID) error
	AddItem(ctx echo.Context, orderID openapi_types.UUID) error
	UpdateItem(ctx echo.Context, orderID openapi_types.UUID, itemID openapi_types.UUID) error
	DeleteItem(ctx echo.Context, orderID openapi_types.UUID, itemID openapi_types.UUID) error
	ListProductionOrders(ctx echo.Context, orderID openapi_types.UUID) error
	CreateProductionOrder(ctx echo.Context, orderID openapi_types.UUID) error
	ListQualityInspections(ctx echo.Context, orderID openapi_types.UUID) error
	AddQualityInspection(ctx echo.Context, orderID openapi_types.UUID) error
	CreateShipment(ctx echo.Context, orderID openapi_types.UUID) error
	ReleaseShipment(ctx echo.Context, shipmentID openapi_types.UUID) error
	CreateClient(ctx echo.Context) error
	CreatePackageSpecification(ctx echo.Context) error
	CalculateUnitMass(ctx echo.Context) error
	CalculateUnitsFromWeight(ctx echo.Context) error
	CalculateMinimumUnits(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "cliente_id", ctx.QueryParams(), &params.ClientID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cliente_id: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// orderRoute adapts operations that only take the order id.
func (w *ServerInterfaceWrapper) orderRoute(op func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := bindPathUUID(ctx, "orderId")
		if err != nil {
			return err
		}
		return op(ctx, orderID)
	}
}

func (w *ServerInterfaceWrapper) itemRoute(op func(echo.Context, openapi_types.UUID, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := bindPathUUID(ctx, "orderId")
		if err != nil {
			return err
		}
		itemID, err := bindPathUUID(ctx, "itemId")
		if err != nil {
			return err
		}
		return op(ctx, orderID, itemID)
	}
}

func (w *ServerInterfaceWrapper) ReleaseShipment(ctx echo.Context) error {
	shipmentID, err := bindPathUUID(ctx, "shipmentId")
	if err != nil {
		return err
	}
	return w.Handler.ReleaseShipment(ctx, shipmentID)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", w.ListOrders)
	router.POST(baseURL+"/orders", w.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", w.orderRoute(si.GetOrder))
	router.PATCH(baseURL+"/orders/:orderId", w.orderRoute(si.UpdateOrderHeader))
	router.POST(baseURL+"/orders/:orderId/status", w.orderRoute(si.ChangeOrderStatus))
	router.POST(baseURL+"/orders/:orderId/recalculate", w.orderRoute(si.RecalculateOrderTotals))
	router.GET(baseURL+"/orders/:orderId/logs", w.orderRoute(si.GetOrderLogs))
	router.GET(baseURL+"/orders/:orderId/metrics", w.orderRoute(si.GetOrderMetrics))
	router.POST(baseURL+"/orders/:orderId/items", w.orderRoute(si.AddItem))
	router.PATCH(baseURL+"/orders/:orderId/items/:itemId", w.itemRoute(si.UpdateItem))
	router.DELETE(baseURL+"/orders/:orderId/items/:itemId", w.itemRoute(si.DeleteItem))
	router.GET(baseURL+"/orders/:orderId/production-orders", w.orderRoute(si.ListProductionOrders))
	router.POST(baseURL+"/orders/:orderId/production-orders", w.orderRoute(si.CreateProductionOrder))
	router.GET(baseURL+"/orders/:orderId/qc", w.orderRoute(si.ListQualityInspections))
	router.POST(baseURL+"/orders/:orderId/qc", w.orderRoute(si.AddQualityInspection))
	router.POST(baseURL+"/orders/:orderId/shipments", w.orderRoute(si.CreateShipment))
	router.POST(baseURL+"/shipments/:shipmentId/release", w.ReleaseShipment)
	router.POST(baseURL+"/clients", si.CreateClient)
	router.POST(baseURL+"/packages", si.CreatePackageSpecification)
	router.POST(baseURL+"/calc/unit-mass", si.CalculateUnitMass)
	router.POST(baseURL+"/calc/units-from-weight", si.CalculateUnitsFromWeight)
	router.POST(baseURL+"/calc/minimum-units", si.CalculateMinimumUnits)
}
