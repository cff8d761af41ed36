package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"notapos/backend/internal/cache"
	"notapos/backend/internal/domain"
	"notapos/backend/internal/pdf"
	"notapos/backend/internal/pricing"
	"notapos/backend/internal/store"
	"notapos/backend/internal/xid"
)

type actorContextKey struct{}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}

// Invoice generation failure taxonomy. Everything that is not a
// missing order surfaces as a rendering fault wrapping its cause; the
// pricing stage is total and cannot fail.
var (
	ErrOrderNotFound = errors.New("order not found")
	ErrRender        = errors.New("invoice rendering failed")
)

type Service struct {
	repo     store.Repository
	invoices cache.InvoiceCache
	shop     domain.ShopProfile
	symbol   string
	logo     []byte
	cacheTTL time.Duration
}

func New(repo store.Repository, invoices cache.InvoiceCache, shop domain.ShopProfile, currencySymbol string, logo []byte, cacheTTL time.Duration) *Service {
	if currencySymbol == "" {
		currencySymbol = "Rp"
	}
	if shop.Name == "" {
		shop.Name = "NotaPOS"
	}

	return &Service{
		repo:     repo,
		invoices: invoices,
		shop:     shop,
		symbol:   currencySymbol,
		logo:     logo,
		cacheTTL: cacheTTL,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.Role != "admin" {
		return domain.Product{}, fmt.Errorf("admin role required")
	}

	req.SKU = strings.ToUpper(strings.TrimSpace(req.SKU))
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.OwnerLabel = strings.TrimSpace(req.OwnerLabel)

	if req.SKU == "" || req.Name == "" {
		return domain.Product{}, store.ErrInvalidOrder
	}
	if req.PriceCents < 1 {
		return domain.Product{}, store.ErrInvalidOrder
	}

	created, err := s.repo.CreateProduct(ctx, domain.Product{
		SKU:        req.SKU,
		Name:       req.Name,
		Category:   req.Category,
		OwnerLabel: req.OwnerLabel,
		PriceCents: req.PriceCents,
		Active:     true,
	})
	if err != nil {
		return domain.Product{}, err
	}

	s.logAudit(ctx, "product_create", "product", created.SKU, fmt.Sprintf("name=%s,price=%d", created.Name, created.PriceCents))

	return *created, nil
}

func (s *Service) CreateCustomer(ctx context.Context, req domain.CustomerCreateRequest) (domain.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" {
		return domain.Customer{}, store.ErrInvalidOrder
	}

	created, err := s.repo.CreateCustomer(ctx, domain.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.Customer{}, err
	}

	s.logAudit(ctx, "customer_create", "customer", created.ID, created.Name)

	return *created, nil
}

func (s *Service) ListCustomers(ctx context.Context, limit int) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx, limit)
}

func (s *Service) CreateOrder(ctx context.Context, req domain.OrderCreateRequest) (domain.Order, error) {
	req.CustomerID = strings.TrimSpace(req.CustomerID)
	if req.CustomerID == "" {
		return domain.Order{}, store.ErrInvalidOrder
	}
	if req.AdjustedAmountCents < 0 || req.AdvanceCents < 0 {
		return domain.Order{}, store.ErrInvalidOrder
	}

	normalized := normalizeItems(req.CartItems)
	if len(normalized) == 0 {
		return domain.Order{}, store.ErrInvalidOrder
	}

	if _, err := s.repo.GetCustomerMini(ctx, req.CustomerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, fmt.Errorf("%w: unknown customer", store.ErrInvalidOrder)
		}
		return domain.Order{}, err
	}

	skus := make([]string, 0, len(normalized))
	for _, item := range normalized {
		skus = append(skus, item.SKU)
	}
	products, err := s.repo.GetProductsBySKUs(ctx, skus)
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, 0, len(normalized))
	for _, item := range normalized {
		product, exists := products[item.SKU]
		if !exists {
			return domain.Order{}, fmt.Errorf("%w: sku %s unavailable", store.ErrInvalidOrder, item.SKU)
		}
		items = append(items, domain.OrderItem{
			ItemID:         xid.New("item"),
			SKU:            product.SKU,
			Name:           product.Name,
			Category:       product.Category,
			OwnerLabel:     product.OwnerLabel,
			Qty:            item.Qty,
			UnitPriceCents: product.PriceCents,
			DiscountPct:    item.DiscountPct,
		})
	}

	order := domain.Order{
		ID:                  uuid.NewString(),
		CustomerID:          req.CustomerID,
		AdjustedAmountCents: req.AdjustedAmountCents,
		AdvanceCents:        req.AdvanceCents,
		Notes:               strings.TrimSpace(req.Notes),
		CreatedAt:           time.Now().UTC(),
		Items:               items,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.logAudit(ctx, "order_create", "order", created.ID,
		fmt.Sprintf("items=%d,adjusted=%d,advance=%d", len(created.Items), created.AdjustedAmountCents, created.AdvanceCents))

	return *created, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return domain.Order{}, err
	}
	return *order, nil
}

func (s *Service) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, limit)
}

// GenerateInvoice runs the whole pipeline for one order: fetch the
// order, its items, and the customer; price the items; assemble the
// invoice record; render it to PDF bytes. A missing order surfaces as
// ErrOrderNotFound; any layout or encoding failure as ErrRender. No
// partial document is ever returned.
func (s *Service) GenerateInvoice(ctx context.Context, orderID string, invoiceNumber string) ([]byte, string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, "", fmt.Errorf("%w: empty order id", ErrOrderNotFound)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, "", fmt.Errorf("%w: loading order: %v", ErrRender, err)
	}

	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		logs, err := s.repo.ListInvoiceLogs(ctx, orderID)
		if err != nil {
			return nil, "", fmt.Errorf("%w: resolving invoice number: %v", ErrRender, err)
		}
		invoiceNumber = fmt.Sprintf("%d", len(logs)+1)
	}

	cacheKey := fmt.Sprintf("invoice:%s:%s", orderID, invoiceNumber)
	if payload, hit, err := s.invoices.Get(ctx, cacheKey); err == nil && hit {
		return payload, invoiceNumber, nil
	} else if err != nil {
		log.Printf("[service] WARN: invoice cache read failed for %s: %v", cacheKey, err)
	}

	customer := domain.CustomerMini{Name: "Walk-in customer"}
	if mini, err := s.repo.GetCustomerMini(ctx, order.CustomerID); err == nil {
		customer = *mini
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("%w: loading customer: %v", ErrRender, err)
	} else {
		log.Printf("[service] WARN: customer %s missing for order %s, using placeholder", order.CustomerID, orderID)
	}

	priced := pricing.Price(pricingRequest(order))

	record := domain.InvoiceRecord{
		Shop:           s.shop,
		Customer:       customer,
		OrderID:        order.ID,
		InvoiceNumber:  invoiceNumber,
		IssuedAt:       time.Now().UTC(),
		CurrencySymbol: s.symbol,
		Notes:          order.Notes,
		Lines:          invoiceLines(order.Items, priced.Lines),
		Totals:         priced,
		Logo:           s.logo,
	}

	payload, err := pdf.Render(record)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	if err := s.invoices.Set(ctx, cacheKey, payload, s.cacheTTL); err != nil {
		log.Printf("[service] WARN: invoice cache write failed for %s: %v", cacheKey, err)
	}

	actor, _ := ActorFromContext(ctx)
	if err := s.repo.CreateInvoiceLog(ctx, domain.InvoiceLog{
		ID:            xid.New("inv"),
		OrderID:       order.ID,
		InvoiceNumber: invoiceNumber,
		SizeBytes:     len(payload),
		GeneratedBy:   actor.Username,
		GeneratedAt:   time.Now().UTC(),
	}); err != nil {
		log.Printf("[service] WARN: failed to record invoice log for order %s: %v", order.ID, err)
	}

	s.logAudit(ctx, "invoice_generate", "order", order.ID,
		fmt.Sprintf("invoice_number=%s,bytes=%d,remaining=%d", invoiceNumber, len(payload), priced.RemainingBalanceCents))

	return payload, invoiceNumber, nil
}

func (s *Service) ListInvoiceLogs(ctx context.Context, orderID string) ([]domain.InvoiceLog, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, store.ErrInvalidOrder
	}
	return s.repo.ListInvoiceLogs(ctx, orderID)
}

func (s *Service) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	return s.repo.ListAuditLogs(ctx, limit)
}

// pricingRequest maps stored order items onto the pricing engine's
// input, preserving item order.
func pricingRequest(order *domain.Order) domain.PricingRequest {
	items := make([]domain.LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.LineItem{
			ItemID:         item.ItemID,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			DiscountPct:    item.DiscountPct,
		})
	}
	return domain.PricingRequest{
		OrderID:             order.ID,
		Items:               items,
		AdjustedAmountCents: order.AdjustedAmountCents,
		AdvanceCents:        order.AdvanceCents,
	}
}

// invoiceLines zips the order items with their priced totals; the
// pricing engine guarantees a 1:1, same-order mapping.
func invoiceLines(items []domain.OrderItem, priced []domain.PricedLine) []domain.InvoiceLine {
	lines := make([]domain.InvoiceLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, domain.InvoiceLine{
			Description:    item.Name,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			DiscountPct:    item.DiscountPct,
			LineTotalCents: priced[i].LineTotalCents,
			OwnerLabel:     item.OwnerLabel,
			TypeLabel:      item.Category,
		})
	}
	return lines
}

func normalizeItems(items []domain.CartItem) []domain.CartItem {
	normalized := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		sku := strings.ToUpper(strings.TrimSpace(item.SKU))
		if sku == "" || item.Qty < 1 {
			continue
		}
		disc := item.DiscountPct
		if disc < 0 {
			disc = 0
		}
		if disc > 100 {
			disc = 100
		}
		normalized = append(normalized, domain.CartItem{SKU: sku, Qty: item.Qty, DiscountPct: disc})
	}
	return normalized
}

func (s *Service) logAudit(ctx context.Context, action, entityType, entityID, detail string) {
	actor, _ := ActorFromContext(ctx)
	entry := domain.AuditLog{
		ID:            xid.New("audit"),
		ActorUsername: actor.Username,
		ActorRole:     actor.Role,
		Action:        action,
		EntityType:    entityType,
		EntityID:      entityID,
		Detail:        detail,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		log.Printf("[service] WARN: failed to write audit log action=%s entity=%s: %v", action, entityID, err)
	}
}
