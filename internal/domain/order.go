package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by the order endpoints.
const (
	PaymentCOD    = "COD"
	PaymentStripe = "stripe"
)

// OrderLine is one entry of the order-submission payload: the flat shape the
// backend expects, built from the cart's nested mapping at checkout time.
type OrderLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// Address is the shipping record collected by the checkout form.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Order is a placed order as returned by the my-orders endpoint.
type Order struct {
	ID            string          `json:"_id"`
	Items         []OrderLine     `json:"items"`
	Amount        decimal.Decimal `json:"amount"`
	Address       Address         `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	IsPaid        bool            `json:"isPaid"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
