package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a sale.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod represents how a sale was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// ErrDuplicateSubmission is returned when a sale with the same idempotency
// key has already been created.
var ErrDuplicateSubmission = errors.New("a sale with this idempotency key already exists")

// Sale is a sale record header. TotalAmount equals the sum of its items'
// total prices at creation time.
type Sale struct {
	ID              uuid.UUID       `json:"id"`
	CustomerName    string          `json:"customer_name"`
	ReferenceNumber string          `json:"reference_number"`
	SaleDate        time.Time       `json:"sale_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Status          Status          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	IdempotencyKey  string          `json:"-"`
	Items           []*Item         `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Item is a single product line within a sale.
type Item struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ProductSKU  string          `json:"product_sku,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CartItem describes one requested product line when creating a sale.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest is the payload for recording a sale.
type CreateSaleRequest struct {
	CustomerName    string     `json:"customer_name"`
	ReferenceNumber string     `json:"reference_number"`
	SaleDate        time.Time  `json:"sale_date,omitempty"`
	PaymentMethod   string     `json:"payment_method"`
	Items           []CartItem `json:"items"`
	Notes           string     `json:"notes,omitempty"`
	IdempotencyKey  string     `json:"idempotency_key,omitempty"`
}

// UpdateStatusRequest is the payload for changing a sale's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
