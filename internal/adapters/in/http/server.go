// Package http exposes the application's REST API over echo. The server is a
// thin layer: it binds requests, builds commands and queries, and maps
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"negoce/internal/core/application/usecases/commands"
	"negoce/internal/core/application/usecases/queries"
	"negoce/internal/core/domain/model/finance"
	"negoce/internal/core/domain/model/kernel"
	"negoce/internal/core/domain/model/order"
	"negoce/internal/core/domain/model/shipping"
	"negoce/internal/core/ports"
	"negoce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createClientHandler      commands.CreateClientCommandHandler
	updateClientHandler      commands.UpdateClientCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStepHandler   commands.ChangeOrderStepCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createCotationHandler    commands.CreateCotationCommandHandler
	deleteCotationHandler    commands.DeleteCotationCommandHandler
	convertCotationHandler   commands.ConvertCotationCommandHandler
	recordTransactionHandler commands.RecordTransactionCommandHandler

	// Query handlers
	getClientsHandler        queries.GetClientsQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderTrackingHandler  queries.GetOrderTrackingQueryHandler
	getCotationsHandler      queries.GetCotationsQueryHandler
	getFinanceSummaryHandler queries.GetFinanceSummaryQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler

	mailer ports.DocumentMailer
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createClientHandler commands.CreateClientCommandHandler,
	updateClientHandler commands.UpdateClientCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStepHandler commands.ChangeOrderStepCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createCotationHandler commands.CreateCotationCommandHandler,
	deleteCotationHandler commands.DeleteCotationCommandHandler,
	convertCotationHandler commands.ConvertCotationCommandHandler,
	recordTransactionHandler commands.RecordTransactionCommandHandler,
	getClientsHandler queries.GetClientsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getCotationsHandler queries.GetCotationsQueryHandler,
	getFinanceSummaryHandler queries.GetFinanceSummaryQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	mailer ports.DocumentMailer,
) *Server {
	return &Server{
		createClientHandler:      createClientHandler,
		updateClientHandler:      updateClientHandler,
		createOrderHandler:       createOrderHandler,
		changeOrderStepHandler:   changeOrderStepHandler,
		deleteOrderHandler:       deleteOrderHandler,
		createCotationHandler:    createCotationHandler,
		deleteCotationHandler:    deleteCotationHandler,
		convertCotationHandler:   convertCotationHandler,
		recordTransactionHandler: recordTransactionHandler,
		getClientsHandler:        getClientsHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderTrackingHandler:  getOrderTrackingHandler,
		getCotationsHandler:      getCotationsHandler,
		getFinanceSummaryHandler: getFinanceSummaryHandler,
		getDashboardStatsHandler: getDashboardStatsHandler,
		mailer:                   mailer,
	}
}

// RegisterRoutes binds all API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.GET("/clients", s.GetClients)
	v1.POST("/clients", s.CreateClient)
	v1.PUT("/clients/:id", s.UpdateClient)

	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.PUT("/orders/:id/step", s.ChangeOrderStep)
	v1.GET("/orders/:id/tracking", s.GetOrderTracking)

	v1.GET("/cotations", s.GetCotations)
	v1.POST("/cotations", s.CreateCotation)
	v1.DELETE("/cotations/:id", s.DeleteCotation)
	v1.POST("/cotations/:id/convert", s.ConvertCotation)

	v1.GET("/finances", s.GetFinanceSummary)
	v1.POST("/finances", s.RecordTransaction)

	v1.GET("/stats", s.GetDashboardStats)

	v1.POST("/documents/send", s.SendDocument)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetClients handles GET /api/v1/clients.
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.getClientsHandler.Handle(ctx.Request().Context(), queries.NewGetClientsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve clients")
	}

	response := make([]clientResponse, len(clients))
	for i, c := range clients {
		response[i] = clientResponse{
			ID:        c.ID.Bytes(),
			Name:      c.Name,
			Phone:     c.Phone,
			Email:     c.Email,
			Address:   c.Address,
			CreatedAt: c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req createClientRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		return s.badRequest(ctx, "Invalid client data: "+err.Error())
	}

	if err := s.createClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create client")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: clientID.Bytes()})
}

// UpdateClient handles PUT /api/v1/clients/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid client id")
	}

	var req createClientRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(clientID, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		return s.badRequest(ctx, "Invalid client data: "+err.Error())
	}

	if err := s.updateClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update client")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderToResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromBytes(req.ClientID[:])
	if err != nil {
		return s.badRequest(ctx, "Invalid client id")
	}

	mode, err := shipping.ModeFromKey(req.Mode)
	if err != nil {
		return s.badRequest(ctx, "Invalid shipping mode: "+req.Mode)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, mode, linesToDomain(req.Lines))
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.Bytes()})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStep handles PUT /api/v1/orders/:id/step. An empty step in the
// body clears the admin override.
func (s *Server) ChangeOrderStep(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var req changeStepRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var cmd commands.ChangeOrderStepCommand
	if req.Step == "" {
		cmd, err = commands.NewClearOrderStepCommand(orderID)
	} else {
		var step order.Step
		step, err = order.StepFromKey(req.Step)
		if err != nil {
			return s.badRequest(ctx, "Invalid step: "+req.Step)
		}
		cmd, err = commands.NewChangeOrderStepCommand(orderID, step)
	}
	if err != nil {
		return s.badRequest(ctx, "Invalid step change: "+err.Error())
	}

	if err := s.changeOrderStepHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to change order step")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTracking handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	tracking, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order tracking")
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		ID:          tracking.ID.Bytes(),
		Number:      tracking.Number,
		ClientName:  tracking.ClientName,
		Mode:        tracking.Mode,
		Total:       tracking.Total,
		CreatedAt:   tracking.CreatedAt,
		Step:        tracking.Progress.Step.String(),
		StepLabel:   tracking.StepLabel,
		Percent:     tracking.Progress.Percent,
		DaysElapsed: tracking.Progress.DaysElapsed,
		Lines:       linesToResponse(tracking.Lines),
	})
}

// GetCotations handles GET /api/v1/cotations.
func (s *Server) GetCotations(ctx echo.Context) error {
	cotations, err := s.getCotationsHandler.Handle(ctx.Request().Context(), queries.NewGetCotationsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve cotations")
	}

	response := make([]cotationResponse, len(cotations))
	for i, c := range cotations {
		response[i] = cotationResponse{
			ID:          c.ID.Bytes(),
			ClientName:  c.ClientName,
			Mode:        c.Mode,
			Lines:       linesToResponse(c.Lines),
			TotalGlobal: c.TotalGlobal,
			CreatedAt:   c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCotation handles POST /api/v1/cotations.
func (s *Server) CreateCotation(ctx echo.Context) error {
	var req createCotationRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromBytes(req.ClientID[:])
	if err != nil {
		return s.badRequest(ctx, "Invalid client id")
	}

	mode, err := shipping.ModeFromKey(req.Mode)
	if err != nil {
		return s.badRequest(ctx, "Invalid shipping mode: "+req.Mode)
	}

	cotationID := kernel.NewUUID()
	cmd, err := commands.NewCreateCotationCommand(cotationID, clientID, mode, linesToDomain(req.Lines))
	if err != nil {
		return s.badRequest(ctx, "Invalid cotation data: "+err.Error())
	}

	if err := s.createCotationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create cotation")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cotationID.Bytes()})
}

// DeleteCotation handles DELETE /api/v1/cotations/:id.
func (s *Server) DeleteCotation(ctx echo.Context) error {
	cotationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid cotation id")
	}

	cmd, err := commands.NewDeleteCotationCommand(cotationID)
	if err != nil {
		return s.badRequest(ctx, "Invalid cotation id")
	}

	if err := s.deleteCotationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete cotation")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConvertCotation handles POST /api/v1/cotations/:id/convert.
func (s *Server) ConvertCotation(ctx echo.Context) error {
	cotationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid cotation id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewConvertCotationCommand(cotationID, orderID)
	if err != nil {
		return s.badRequest(ctx, "Invalid conversion request")
	}

	if err := s.convertCotationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to convert cotation")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.Bytes()})
}

// GetFinanceSummary handles GET /api/v1/finances.
func (s *Server) GetFinanceSummary(ctx echo.Context) error {
	summary, err := s.getFinanceSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetFinanceSummaryQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve finance summary")
	}

	entries := make([]financeEntryResponse, len(summary.Entries))
	for i, e := range summary.Entries {
		entries[i] = financeEntryResponse{
			ID:        e.ID.Bytes(),
			Kind:      e.Kind,
			Label:     e.Label,
			Amount:    e.Amount,
			CreatedAt: e.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, financeSummaryResponse{
		Entries:          entries,
		Revenue:          summary.Revenue,
		Expense:          summary.Expense,
		Balance:          summary.Balance,
		FormattedRevenue: summary.FormattedRevenue,
		FormattedExpense: summary.FormattedExpense,
		FormattedBalance: summary.FormattedBalance,
	})
}

// RecordTransaction handles POST /api/v1/finances.
func (s *Server) RecordTransaction(ctx echo.Context) error {
	var req recordTransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	kind, err := finance.KindFromKey(req.Kind)
	if err != nil {
		return s.badRequest(ctx, "Invalid transaction kind: "+req.Kind)
	}

	transactionID := kernel.NewUUID()
	cmd, err := commands.NewRecordTransactionCommand(transactionID, kind, req.Label, req.Amount)
	if err != nil {
		return s.badRequest(ctx, "Invalid transaction data: "+err.Error())
	}

	if err := s.recordTransactionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to record transaction")
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: transactionID.Bytes()})
}

// GetDashboardStats handles GET /api/v1/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve dashboard stats")
	}

	if stats.ServedFromCache {
		ctx.Response().Header().Set("X-Cache", "HIT")
	}

	return ctx.JSON(http.StatusOK, stats)
}

// SendDocument handles POST /api/v1/documents/send. The request is multipart:
// a "document" file part plus "recipients" (comma separated), "subject" and
// "body" form fields.
func (s *Server) SendDocument(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("document")
	if err != nil {
		return s.badRequest(ctx, "Missing document file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return s.fail(ctx, err, "Failed to read document")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return s.fail(ctx, err, "Failed to read document")
	}

	recipients := splitRecipients(ctx.FormValue("recipients"))
	if len(recipients) == 0 {
		return s.badRequest(ctx, "At least one recipient is required")
	}

	doc := ports.Document{
		Filename: fileHeader.Filename,
		Content:  content,
	}

	err = s.mailer.Send(ctx.Request().Context(), recipients, ctx.FormValue("subject"), ctx.FormValue("body"), doc)
	if err != nil {
		return s.fail(ctx, err, "Failed to send document")
	}

	return ctx.NoContent(http.StatusAccepted)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, apiError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps application errors onto status codes: missing aggregates become
// 404, validation failures 400, everything else 500.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, apiError{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: message + ": " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, apiError{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func splitRecipients(raw string) []string {
	var recipients []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
