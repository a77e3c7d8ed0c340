package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/app/services"
	"github.com/karthik/printdesk/internal/middleware"
)

// OrderController handles order intake and lifecycle operations
type OrderController struct {
	orderService services.OrderService
	printService services.PrintService
}

// NewOrderController creates a new OrderController
func NewOrderController(orderService services.OrderService, printService services.PrintService) *OrderController {
	return &OrderController{
		orderService: orderService,
		printService: printService,
	}
}

// CreateOrder handles an order submission with uploaded files
// @Summary Submit a print order
// @Description Uploads up to 10 files with print preferences and creates a pending order
// @Tags orders
// @Accept multipart/form-data
// @Produce json
// @Param studentName formData string true "Student name"
// @Param files formData file true "Files to print (repeatable, max 10)"
// @Param paymentMethod formData string false "cash or online"
// @Param amount formData string false "Amount in whole INR"
// @Success 200 {object} dto.APIResponse{data=dto.CreateOrderResponse} "Order created"
// @Failure 400 {object} dto.ErrorResponse "Missing studentName or files"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /orders [post]
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid order data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid multipart payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.orderService.CreateOrder(ctx, &req, form.File["files"])
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CreateOrderResponse{
		Message: "Upload successful",
		OrderID: id,
	}))
}

// GetOrderByID retrieves a single order
// @Summary Get order details
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.APIResponse{data=models.Order}
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Router /orders/{id} [get]
func (c *OrderController) GetOrderByID(ctx *gin.Context) {
	id, ok := orderIDParam(ctx)
	if !ok {
		return
	}

	order, err := c.orderService.GetOrder(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(order))
}

// GetStudentOrders lists one student's orders, newest first
// @Summary List a student's orders
// @Tags orders
// @Produce json
// @Param name query string true "Student name"
// @Success 200 {object} dto.APIResponse{data=[]models.Order}
// @Failure 400 {object} dto.ErrorResponse "Missing student name"
// @Router /orders/student [get]
func (c *OrderController) GetStudentOrders(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing student name (query param ?name=...)")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	orders, err := c.orderService.ListOrdersByStudent(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(orders))
}

// GetAllOrders lists the whole ledger, newest first
// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Order}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /orders [get]
func (c *OrderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.orderService.ListAllOrders(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(orders))
}

// CompleteOrder marks an order completed
// @Summary Mark order completed
// @Description Moves the order to its terminal state. Idempotent.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Router /orders/{id}/complete [post]
func (c *OrderController) CompleteOrder(ctx *gin.Context) {
	id, ok := orderIDParam(ctx)
	if !ok {
		return
	}

	if err := c.orderService.CompleteOrder(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Order marked as completed",
	}))
}

// PrintOrder dispatches an order's files to the printer
// @Summary Print order files
// @Description Submits each file to the print spooler. Best effort: spool outcomes are logged, not returned, and order state is unchanged.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "No files to print"
// @Failure 404 {object} dto.ErrorResponse "Order or file not found"
// @Router /orders/{id}/print [post]
func (c *OrderController) PrintOrder(ctx *gin.Context) {
	id, ok := orderIDParam(ctx)
	if !ok {
		return
	}

	if err := c.printService.DispatchPrint(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Print job(s) sent",
	}))
}

// ResetLedger clears the order ledger
// @Summary Reset the order ledger
// @Description Destructive: deletes every order and resets id assignment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/reset [post]
func (c *OrderController) ResetLedger(ctx *gin.Context) {
	if err := c.orderService.ResetLedger(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Database cleared",
	}))
}

// orderIDParam parses the :id path segment, writing the 400 itself on
// malformed input
func orderIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid order ID")
		errorDetail = errorDetail.WithDetails("Order ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
