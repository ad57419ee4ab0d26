package http

import (
	"errors"
	"net/http"
	"strconv"

	"radiology/internal/core/application/usecases/commands"
	"radiology/internal/core/application/usecases/queries"
	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the radiology order HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	saveOrderHandler          commands.SaveOrderCommandHandler
	voidOrderHandler          commands.VoidOrderCommandHandler
	unvoidOrderHandler        commands.UnvoidOrderCommandHandler
	discontinueOrderHandler   commands.DiscontinueOrderCommandHandler
	undiscontinueOrderHandler commands.UndiscontinueOrderCommandHandler

	// Query handlers
	getOrderFormHandler    queries.GetOrderFormQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	saveOrderHandler commands.SaveOrderCommandHandler,
	voidOrderHandler commands.VoidOrderCommandHandler,
	unvoidOrderHandler commands.UnvoidOrderCommandHandler,
	discontinueOrderHandler commands.DiscontinueOrderCommandHandler,
	undiscontinueOrderHandler commands.UndiscontinueOrderCommandHandler,
	getOrderFormHandler queries.GetOrderFormQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		saveOrderHandler:          saveOrderHandler,
		voidOrderHandler:          voidOrderHandler,
		unvoidOrderHandler:        unvoidOrderHandler,
		discontinueOrderHandler:   discontinueOrderHandler,
		undiscontinueOrderHandler: undiscontinueOrderHandler,
		getOrderFormHandler:       getOrderFormHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/radiology")

	api.GET("/orders/form", s.GetOrderForm)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders", s.SaveOrder)
	api.POST("/orders/:id/void", s.VoidOrder)
	api.POST("/orders/:id/unvoid", s.UnvoidOrder)
	api.POST("/orders/:id/discontinue", s.DiscontinueOrder)
	api.POST("/orders/:id/undiscontinue", s.UndiscontinueOrder)
}

// GetOrderForm handles GET /api/v1/radiology/orders/form - loads the order form read
// model. Without an order_id parameter it returns a blank form, prefilled
// from the patient_id parameter and the caller's referring capability.
func (s *Server) GetOrderForm(ctx echo.Context) error {
	orderID, err := optionalRecordID(ctx.QueryParam("order_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order_id parameter",
		})
	}

	patientID, err := optionalRecordID(ctx.QueryParam("patient_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid patient_id parameter",
		})
	}

	query := queries.NewGetOrderFormQuery(orderID, patientID)

	form, err := s.getOrderFormHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load order form",
		})
	}

	return ctx.JSON(http.StatusOK, form)
}

// GetActiveOrders handles GET /api/v1/radiology/orders/active - retrieves all orders
// that are neither voided nor discontinued.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// SaveOrder handles POST /api/v1/radiology/orders - creates or updates an order with
// its study and announces it to the worklist.
func (s *Server) SaveOrder(ctx echo.Context) error {
	var req SaveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := saveCommandFromRequest(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	outcome, err := s.saveOrderHandler.Handle(ctx.Request().Context(), cmd)
	return respondOutcome(ctx, outcome, err)
}

// VoidOrder handles POST /api/v1/radiology/orders/:id/void.
func (s *Server) VoidOrder(ctx echo.Context) error {
	orderID, err := pathRecordID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req VoidOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewVoidOrderCommand(orderID, req.Reason)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid void data: " + err.Error(),
		})
	}

	outcome, err := s.voidOrderHandler.Handle(ctx.Request().Context(), cmd)
	return respondOutcome(ctx, outcome, err)
}

// UnvoidOrder handles POST /api/v1/radiology/orders/:id/unvoid.
func (s *Server) UnvoidOrder(ctx echo.Context) error {
	orderID, err := pathRecordID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewUnvoidOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid unvoid data: " + err.Error(),
		})
	}

	outcome, err := s.unvoidOrderHandler.Handle(ctx.Request().Context(), cmd)
	return respondOutcome(ctx, outcome, err)
}

// DiscontinueOrder handles POST /api/v1/radiology/orders/:id/discontinue.
func (s *Server) DiscontinueOrder(ctx echo.Context) error {
	orderID, err := pathRecordID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req DiscontinueOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDiscontinueOrderCommand(orderID, req.Reason, req.Date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid discontinue data: " + err.Error(),
		})
	}

	outcome, err := s.discontinueOrderHandler.Handle(ctx.Request().Context(), cmd)
	return respondOutcome(ctx, outcome, err)
}

// UndiscontinueOrder handles POST /api/v1/radiology/orders/:id/undiscontinue.
func (s *Server) UndiscontinueOrder(ctx echo.Context) error {
	orderID, err := pathRecordID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewUndiscontinueOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid undiscontinue data: " + err.Error(),
		})
	}

	outcome, err := s.undiscontinueOrderHandler.Handle(ctx.Request().Context(), cmd)
	return respondOutcome(ctx, outcome, err)
}

func saveCommandFromRequest(req SaveOrderRequest) (commands.SaveOrderCommand, error) {
	var orderID kernel.RecordID
	if req.OrderID != 0 {
		id, err := kernel.NewRecordID(req.OrderID)
		if err != nil {
			return commands.SaveOrderCommand{}, err
		}
		orderID = id
	}

	patientID, err := kernel.NewRecordID(req.PatientID)
	if err != nil {
		return commands.SaveOrderCommand{}, err
	}

	ordererID, err := kernel.NewRecordID(req.OrdererID)
	if err != nil {
		return commands.SaveOrderCommand{}, err
	}

	modality, err := study.ModalityFromString(req.Modality)
	if err != nil {
		return commands.SaveOrderCommand{}, err
	}

	priority, err := study.PriorityFromString(req.Priority)
	if err != nil {
		return commands.SaveOrderCommand{}, err
	}

	return commands.NewSaveOrderCommand(orderID, patientID, ordererID, modality, priority)
}

// respondOutcome translates a command outcome into an HTTP response. Fully
// successful outcomes redirect to the active order list; a worklist refusal
// is a completed request and answers 200 with the outcome code.
func respondOutcome(ctx echo.Context, outcome commands.Outcome, err error) error {
	switch outcome {
	case commands.OutcomeNotAuthenticated:
		return ctx.JSON(http.StatusUnauthorized, OutcomeResponse{Outcome: outcome.String()})
	case commands.OutcomeStudyPerformed:
		return ctx.JSON(http.StatusConflict, OutcomeResponse{Outcome: outcome.String()})
	default:
	}

	if err != nil || !outcome.Success() {
		return ctx.JSON(http.StatusInternalServerError, OutcomeResponse{
			Outcome: commands.OutcomeInternalError.String(),
		})
	}

	if outcome.Redirects() {
		ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/radiology/orders/active")
		return ctx.JSON(http.StatusSeeOther, OutcomeResponse{Outcome: outcome.String()})
	}

	return ctx.JSON(http.StatusOK, OutcomeResponse{Outcome: outcome.String()})
}

func pathRecordID(ctx echo.Context) (kernel.RecordID, error) {
	return parseRecordID(ctx.Param("id"))
}

// optionalRecordID parses a query parameter that may be absent. An empty
// value yields the zero RecordID.
func optionalRecordID(raw string) (kernel.RecordID, error) {
	if raw == "" {
		return kernel.RecordID{}, nil
	}
	return parseRecordID(raw)
}

func parseRecordID(raw string) (kernel.RecordID, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return kernel.RecordID{}, err
	}
	return kernel.NewRecordID(v)
}
