package http

import (
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/adapters/in/http/middleware"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API for order fulfillment.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	verifyDeliveryHandler commands.VerifyDeliveryCommandHandler
	setOrderStatusHandler commands.SetOrderStatusCommandHandler
	createCourierHandler  commands.CreateCourierCommandHandler

	// Query handlers
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getCourierOrdersHandler  queries.GetCourierOrdersQueryHandler
	getAllCouriersHandler    queries.GetAllCouriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	verifyDeliveryHandler commands.VerifyDeliveryCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		verifyDeliveryHandler:    verifyDeliveryHandler,
		setOrderStatusHandler:    setOrderStatusHandler,
		createCourierHandler:     createCourierHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getCourierOrdersHandler:  getCourierOrdersHandler,
		getAllCouriersHandler:    getAllCouriersHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance. All routes
// require a valid bearer token; the admin group additionally requires the
// admin role.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	v1 := e.Group("/api/v1", auth)

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders", s.GetMyOrders)
	v1.POST("/orders/:orderId/verify", s.VerifyDelivery)
	v1.GET("/couriers", s.GetCouriers)
	v1.GET("/couriers/:courierId/orders", s.GetCourierOrders)

	admin := v1.Group("/admin", middleware.RequireAdmin())
	admin.GET("/orders", s.GetAllOrders)
	admin.PUT("/orders/:orderId/status", s.SetOrderStatus)

	// Courier onboarding is an administrative operation.
	v1.POST("/couriers", s.CreateCourier, middleware.RequireAdmin())
}

// PlaceOrder handles POST /api/v1/orders - places a new order for the caller.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		foodID, idErr := kernel.UUIDFromString(item.FoodID)
		if idErr != nil {
			return badRequest(ctx, "Invalid food id: "+item.FoodID)
		}

		lines = append(lines, commands.OrderLine{FoodID: foodID, Quantity: item.Quantity})
	}

	var location *kernel.GeoPoint
	if body.Location != nil {
		point, geoErr := kernel.NewGeoPoint(body.Location.Lat, body.Location.Lng)
		if geoErr != nil {
			return badRequest(ctx, "Invalid location: "+geoErr.Error())
		}
		location = &point
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		customerID,
		lines,
		commands.DeliveryDetails{
			Name:    body.Delivery.Name,
			Phone:   body.Delivery.Phone,
			Address: body.Delivery.Address,
		},
		commands.PaymentDetails{
			TransactionID: body.Payment.TransactionID,
			Status:        body.Payment.Status,
		},
		location,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// VerifyDelivery handles POST /api/v1/orders/:orderId/verify - confirms a handoff.
func (s *Server) VerifyDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body VerifyDelivery
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyDeliveryCommand(orderID, body.Code)
	if err != nil {
		return badRequest(ctx, "Invalid verification data: "+err.Error())
	}

	if handleErr := s.verifyDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMyOrders handles GET /api/v1/orders - retrieves the caller's orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetCourierOrders handles GET /api/v1/couriers/:courierId/orders - retrieves
// the orders assigned to a courier.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve couriers")
	}

	response := make([]Courier, len(couriers))
	for i, c := range couriers {
		response[i] = Courier{
			ID:          c.ID.String(),
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			IsAvailable: c.IsAvailable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - onboards a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), body.Name, body.Email, body.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetAllOrders handles GET /api/v1/admin/orders - retrieves all orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// SetOrderStatus handles PUT /api/v1/admin/orders/:orderId/status - overrides
// an order's status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+body.Status)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// callerID extracts the authenticated caller's id from the request context.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
	}

	id, err := kernel.UUIDFromString(principal.UserID)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid principal")
	}

	return id, nil
}

func toOrderResponses(orders []queries.OrderSummaryResponse) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		var courierID *string
		if o.CourierID != nil {
			id := o.CourierID.String()
			courierID = &id
		}

		response[i] = Order{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			CourierID:  courierID,
			Status:     o.Status.String(),
			TotalPrice: o.TotalPrice,
			PlacedAt:   o.PlacedAt.Format(time.RFC3339),
		}
	}

	return response
}

// domainError maps application errors to HTTP responses.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, ports.ErrNoCourierAvailable):
		return errorResponse(ctx, http.StatusConflict, "No courier is available right now, try again later")
	case errors.Is(err, order.ErrPaymentNotConfirmed):
		return errorResponse(ctx, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, order.ErrInvalidVerificationCode):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, order.ErrVerificationAttemptsExceeded):
		return errorResponse(ctx, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, order.ErrDeliveredOnlyViaVerification):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return internalError(ctx, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusBadRequest, message)
}

func internalError(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusInternalServerError, message)
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
