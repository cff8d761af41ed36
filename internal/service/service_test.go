package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"notapos/backend/internal/cache"
	"notapos/backend/internal/domain"
	"notapos/backend/internal/store"
	"notapos/backend/internal/store/memory"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	shop := domain.ShopProfile{Name: "Toko Nota", Address: "Jl. Malioboro 12, Yogyakarta", Phone: "0274-555-123"}
	return New(memory.NewSeeded(), cache.NoopInvoiceCache{}, shop, "Rp", nil, time.Minute)
}

func adminContext() context.Context {
	return WithActor(context.Background(), domain.Actor{Username: "admin", Role: "admin"})
}

func createTestOrder(t *testing.T, svc *Service, req domain.OrderCreateRequest) domain.Order {
	t.Helper()
	order, err := svc.CreateOrder(adminContext(), req)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return order
}

func TestCreateOrderSnapshotsProducts(t *testing.T) {
	svc := newTestService(t)

	order := createTestOrder(t, svc, domain.OrderCreateRequest{
		CustomerID: "cust-demo",
		CartItems: []domain.CartItem{
			{SKU: "sku-batik-01", Qty: 2, DiscountPct: 10},
			{SKU: "SKU-KAIN-01", Qty: 1},
		},
		AdjustedAmountCents: 10000,
		AdvanceCents:        50000,
	})

	if len(order.Items) != 2 {
		t.Fatalf("expected 2 snapshot items, got %d", len(order.Items))
	}
	first := order.Items[0]
	if first.SKU != "SKU-BATIK-01" {
		t.Fatalf("expected lowercase sku to be normalized, got %s", first.SKU)
	}
	if first.Name == "" || first.UnitPriceCents < 1 {
		t.Fatalf("expected product snapshot on item, got %+v", first)
	}
	if first.ItemID == "" || first.ItemID == order.Items[1].ItemID {
		t.Fatalf("expected distinct item ids, got %q and %q", first.ItemID, order.Items[1].ItemID)
	}
}

func TestCreateOrderRejectsUnknownInputs(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateOrder(adminContext(), domain.OrderCreateRequest{
		CustomerID: "cust-demo",
		CartItems:  []domain.CartItem{{SKU: "SKU-MISSING", Qty: 1}},
	})
	if !errors.Is(err, store.ErrInvalidOrder) {
		t.Fatalf("expected invalid order for unknown sku, got %v", err)
	}

	_, err = svc.CreateOrder(adminContext(), domain.OrderCreateRequest{
		CustomerID: "cust-missing",
		CartItems:  []domain.CartItem{{SKU: "SKU-BATIK-01", Qty: 1}},
	})
	if !errors.Is(err, store.ErrInvalidOrder) {
		t.Fatalf("expected invalid order for unknown customer, got %v", err)
	}

	_, err = svc.CreateOrder(adminContext(), domain.OrderCreateRequest{
		CustomerID: "cust-demo",
		CartItems:  []domain.CartItem{{SKU: "SKU-BATIK-01", Qty: 0}},
	})
	if !errors.Is(err, store.ErrInvalidOrder) {
		t.Fatalf("expected invalid order for empty normalized cart, got %v", err)
	}
}

func TestGenerateInvoiceEndToEnd(t *testing.T) {
	svc := newTestService(t)

	order := createTestOrder(t, svc, domain.OrderCreateRequest{
		CustomerID: "cust-demo",
		CartItems: []domain.CartItem{
			{SKU: "SKU-BATIK-01", Qty: 2, DiscountPct: 10},
			{SKU: "SKU-KAIN-01", Qty: 1},
		},
		AdjustedAmountCents: 10000,
		AdvanceCents:        50000,
	})

	payload, number, err := svc.GenerateInvoice(adminContext(), order.ID, "")
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte("%PDF-")) {
		t.Fatalf("expected PDF payload, got prefix %q", payload[:min(8, len(payload))])
	}
	if number != "1" {
		t.Fatalf("expected first invoice number to default to 1, got %s", number)
	}

	logs, err := svc.ListInvoiceLogs(adminContext(), order.ID)
	if err != nil {
		t.Fatalf("ListInvoiceLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 invoice log, got %d", len(logs))
	}
	if logs[0].SizeBytes != len(payload) || logs[0].GeneratedBy != "admin" {
		t.Fatalf("unexpected invoice log %+v", logs[0])
	}

	_, number, err = svc.GenerateInvoice(adminContext(), order.ID, "")
	if err != nil {
		t.Fatalf("GenerateInvoice second run: %v", err)
	}
	if number != "2" {
		t.Fatalf("expected second invoice number 2, got %s", number)
	}
}

func TestGenerateInvoiceMissingOrder(t *testing.T) {
	svc := newTestService(t)

	payload, _, err := svc.GenerateInvoice(adminContext(), "order-nope", "7")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if payload != nil {
		t.Fatalf("expected no payload on missing order, got %d bytes", len(payload))
	}

	logs, err := svc.ListInvoiceLogs(adminContext(), "order-nope")
	if err != nil {
		t.Fatalf("ListInvoiceLogs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no invoice logs for missing order, got %d", len(logs))
	}
}

type mapCache struct {
	entries map[string][]byte
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	c.entries[key] = payload
	c.sets++
	return nil
}

func TestGenerateInvoiceReusesCachedDocument(t *testing.T) {
	invoices := newMapCache()
	shop := domain.ShopProfile{Name: "Toko Nota"}
	svc := New(memory.NewSeeded(), invoices, shop, "Rp", nil, time.Minute)

	order := createTestOrder(t, svc, domain.OrderCreateRequest{
		CustomerID: "cust-demo",
		CartItems:  []domain.CartItem{{SKU: "SKU-BATIK-01", Qty: 1}},
	})

	first, _, err := svc.GenerateInvoice(adminContext(), order.ID, "5")
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if invoices.sets != 1 {
		t.Fatalf("expected one cache write, got %d", invoices.sets)
	}

	second, _, err := svc.GenerateInvoice(adminContext(), order.ID, "5")
	if err != nil {
		t.Fatalf("GenerateInvoice cached run: %v", err)
	}
	if invoices.sets != 1 {
		t.Fatalf("expected cache hit to skip the render, writes=%d", invoices.sets)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical cached payload")
	}

	logs, err := svc.ListInvoiceLogs(adminContext(), order.ID)
	if err != nil {
		t.Fatalf("ListInvoiceLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one invoice log for cached re-download, got %d", len(logs))
	}
}

func TestCreateProductRequiresAdmin(t *testing.T) {
	svc := newTestService(t)

	cashierCtx := WithActor(context.Background(), domain.Actor{Username: "kasir1", Role: "cashier"})
	if _, err := svc.CreateProduct(cashierCtx, domain.ProductCreateRequest{SKU: "SKU-NEW", Name: "Selendang", PriceCents: 7500000}); err == nil {
		t.Fatalf("expected cashier product creation to be rejected")
	}

	created, err := svc.CreateProduct(adminContext(), domain.ProductCreateRequest{
		SKU: " sku-new ", Name: "Selendang Batik", Category: "Aksesoris", PriceCents: 7500000,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.SKU != "SKU-NEW" || !created.Active {
		t.Fatalf("unexpected created product %+v", created)
	}
}
