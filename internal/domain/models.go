package domain

import "time"

type Product struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	OwnerLabel string `json:"owner_label"`
	PriceCents int64  `json:"price_cents"`
	Active     bool   `json:"active"`
}

type ProductCreateRequest struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	OwnerLabel string `json:"owner_label"`
	PriceCents int64  `json:"price_cents"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerCreateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerMini is the slice of customer data an invoice displays.
type CustomerMini struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CartItem struct {
	SKU         string `json:"sku"`
	Qty         int    `json:"qty"`
	DiscountPct int    `json:"discount_pct"`
}

type OrderCreateRequest struct {
	CustomerID          string     `json:"customer_id"`
	CartItems           []CartItem `json:"cart_items"`
	AdjustedAmountCents int64      `json:"adjusted_amount_cents"`
	AdvanceCents        int64      `json:"advance_cents"`
	Notes               string     `json:"notes"`
}

// OrderItem snapshots the product at order time so later catalog edits
// do not change historical invoices.
type OrderItem struct {
	ItemID         string `json:"item_id"`
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	OwnerLabel     string `json:"owner_label"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	DiscountPct    int    `json:"discount_pct"`
}

type Order struct {
	ID                  string      `json:"id"`
	CustomerID          string      `json:"customer_id"`
	AdjustedAmountCents int64       `json:"adjusted_amount_cents"`
	AdvanceCents        int64       `json:"advance_cents"`
	Notes               string      `json:"notes"`
	CreatedAt           time.Time   `json:"created_at"`
	Items               []OrderItem `json:"items"`
}

type OrderResponse struct {
	Order Order `json:"order"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// LineItem is one pricing-engine input line.
type LineItem struct {
	ItemID         string
	Qty            int
	UnitPriceCents int64
	DiscountPct    int
}

// PricingRequest carries everything the pricing engine needs for one
// order. Constructed fresh per computation and never mutated.
type PricingRequest struct {
	OrderID             string
	Items               []LineItem
	AdjustedAmountCents int64
	AdvanceCents        int64
}

type PricedLine struct {
	ItemID         string
	LineTotalCents int64
}

type PricingResult struct {
	Lines                     []PricedLine
	SubtotalBeforeAdjustCents int64
	AdjustedAmountCents       int64
	TotalAmountCents          int64
	AdvanceCents              int64
	RemainingBalanceCents     int64
}

// InvoiceLine is one rendered table row of an invoice.
type InvoiceLine struct {
	Description    string
	Qty            int
	UnitPriceCents int64
	DiscountPct    int
	LineTotalCents int64
	OwnerLabel     string
	TypeLabel      string
}

// ShopProfile is the shop identity block printed on every invoice page.
type ShopProfile struct {
	Name    string
	Address string
	Phone   string
}

// InvoiceRecord is the immutable input of the document layout engine:
// one fully priced order plus everything the pages display.
type InvoiceRecord struct {
	Shop           ShopProfile
	Customer       CustomerMini
	OrderID        string
	InvoiceNumber  string
	IssuedAt       time.Time
	CurrencySymbol string
	Notes          string
	Lines          []InvoiceLine
	Totals         PricingResult
	Logo           []byte
}

// InvoiceLog records that an invoice document was generated for an order.
type InvoiceLog struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	InvoiceNumber string    `json:"invoice_number"`
	SizeBytes     int       `json:"size_bytes"`
	GeneratedBy   string    `json:"generated_by"`
	GeneratedAt   time.Time `json:"generated_at"`
}

type InvoiceLogListResponse struct {
	Invoices []InvoiceLog `json:"invoices"`
}

type AuditLog struct {
	ID            string    `json:"id"`
	ActorUsername string    `json:"actor_username"`
	ActorRole     string    `json:"actor_role"`
	Action        string    `json:"action"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	Detail        string    `json:"detail"`
	CreatedAt     time.Time `json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	ExpiresAt   string `json:"expires_at"`
}

type Actor struct {
	Username string
	Role     string
}

type CashierCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CashierUser struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserAccount is an internal persistence model for auth credentials.
type UserAccount struct {
	Username  string
	Password  string
	Role      string
	Active    bool
	CreatedAt time.Time
}
