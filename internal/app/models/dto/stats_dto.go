package dto

import "github.com/karthik/printdesk/internal/app/models"

// DailyPaymentsResponse tags one calendar day's payment summary with the
// day it covers
type DailyPaymentsResponse struct {
	Date string `json:"date" example:"2025-04-23"`
	models.PaymentSummary
}

// RangedPaymentsResponse tags a windowed payment summary with the range
// kind that produced it
type RangedPaymentsResponse struct {
	Filter string `json:"filter" example:"week"`
	models.PaymentSummary
}

// CreatePaymentRequest asks the payment gateway for an order
type CreatePaymentRequest struct {
	Amount      string `json:"amount" binding:"required" example:"50"`
	StudentName string `json:"studentName" example:"Asha"`
}
