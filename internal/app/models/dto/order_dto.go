package dto

// CreateOrderRequest carries the multipart form fields of an order
// submission. Numeric fields arrive as strings and are coerced by the
// order service: anything unparsable counts as 0, by policy rather than
// rejection. Files travel separately in the multipart payload.
type CreateOrderRequest struct {
	StudentID     *int64 `form:"studentId"`
	StudentName   string `form:"studentName"`
	PaymentMethod string `form:"paymentMethod"`
	Amount        string `form:"amount"`
	Bin           string `form:"bin"`
	LunchTime     string `form:"lunchTime"`
	Pages         string `form:"pages"`
	Copies        string `form:"copies"`
	PrintType     string `form:"printType"`
	Sides         string `form:"sides"`
}

// CreateOrderResponse returns the id the ledger assigned to a new order
type CreateOrderResponse struct {
	Message string `json:"message" example:"Upload successful"`
	OrderID int64  `json:"orderId" example:"42"`
}
