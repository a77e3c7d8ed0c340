package models

import "time"

// OrderStatus is the persisted lifecycle state of an order. Printing is
// an action, not a stored state; only pending and completed exist on disk.
type OrderStatus string

const (
	// OrderStatusPending is the state every order is created in
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusCompleted is the terminal state; there is no way back
	OrderStatusCompleted OrderStatus = "completed"
)

// PaymentMethod is how the student pays for an order
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

// NormalizePaymentMethod maps arbitrary input onto a valid payment
// method. Anything that is not exactly "online" is treated as cash.
func NormalizePaymentMethod(s string) PaymentMethod {
	if s == string(PaymentMethodOnline) {
		return PaymentMethodOnline
	}
	return PaymentMethodCash
}

// Order defines one print job based on the 'orders' table
type Order struct {
	ID            int64         `json:"id" example:"42"`
	StudentID     *int64        `json:"studentId,omitempty" example:"7"`
	StudentName   string        `json:"studentName" example:"Asha"`
	FilePaths     []string      `json:"filePaths"`
	Status        OrderStatus   `json:"status" example:"pending"`
	PaymentMethod PaymentMethod `json:"paymentMethod" example:"cash"`
	Amount        int64         `json:"amount" example:"50"` // whole INR
	Bin           string        `json:"bin,omitempty" example:"B2"`
	LunchTime     string        `json:"lunchTime,omitempty" example:"12:30"`
	Pages         int           `json:"pages" example:"10"`
	Copies        int           `json:"copies" example:"2"`
	PrintType     string        `json:"printType,omitempty" example:"bw"`
	Sides         string        `json:"sides,omitempty" example:"double"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// OrderStats is the dashboard view over the whole order ledger
type OrderStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Completed   int64 `json:"completed"`
	Online      int64 `json:"online"`
	Cash        int64 `json:"cash"`
	TotalEarned int64 `json:"totalEarned"` // sum of amount over completed orders only
}

// PaymentSummary partitions the orders of one time window by payment
// method. Counts and totals come out of a single query so
// cash + online always equals the window's order count.
type PaymentSummary struct {
	CashCount   int64 `json:"cashCount"`
	CashTotal   int64 `json:"cashTotal"`
	OnlineCount int64 `json:"onlineCount"`
	OnlineTotal int64 `json:"onlineTotal"`
}
