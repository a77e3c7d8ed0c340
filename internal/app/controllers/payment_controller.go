package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/app/services"
	"github.com/karthik/printdesk/internal/middleware"
)

// PaymentController bridges the frontend checkout to the payment gateway
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePayment creates a gateway payment order for online checkout
// @Summary Create a payment order
// @Description Registers the amount with the payment gateway and returns the gateway order id the client completes checkout with
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment amount in whole INR"
// @Success 200 {object} dto.APIResponse{data=payment.GatewayOrder}
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Failure 500 {object} dto.ErrorResponse "Gateway error"
// @Router /payments [post]
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	order, err := c.paymentService.CreatePaymentOrder(ctx, req.Amount, req.StudentName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(order))
}
