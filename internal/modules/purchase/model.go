package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a purchase order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus represents how much of a purchase has been settled.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentRefunded PaymentStatus = "refunded"
)

// ErrDuplicateSubmission is returned when a purchase with the same
// idempotency key has already been created.
var ErrDuplicateSubmission = errors.New("a purchase with this idempotency key already exists")

// Purchase is a purchase order header. TotalAmount equals the sum of its
// items' total prices at creation time.
type Purchase struct {
	ID              uuid.UUID       `json:"id"`
	SupplierID      uuid.UUID       `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	ReferenceNumber string          `json:"reference_number"`
	PurchaseDate    time.Time       `json:"purchase_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	Notes           string          `json:"notes,omitempty"`
	IdempotencyKey  string          `json:"-"`
	Items           []*Item         `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Item is a single product line within a purchase order.
type Item struct {
	ID          uuid.UUID       `json:"id"`
	PurchaseID  uuid.UUID       `json:"purchase_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ProductSKU  string          `json:"product_sku,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CartItem describes one requested product line when creating a purchase.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseRequest is the payload for creating a purchase order.
type CreatePurchaseRequest struct {
	SupplierID      string     `json:"supplier_id"`
	ReferenceNumber string     `json:"reference_number"`
	PurchaseDate    time.Time  `json:"purchase_date,omitempty"`
	Items           []CartItem `json:"items"`
	Notes           string     `json:"notes,omitempty"`
	IdempotencyKey  string     `json:"idempotency_key,omitempty"`
}

// UpdateStatusRequest is the payload for changing a purchase's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentStatusRequest is the payload for changing the payment status.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}
