package cache

import (
	"context"
	"time"
)

// InvoiceCache holds rendered invoice documents keyed by order id and
// invoice number, so re-downloading an invoice does not re-run the
// layout engine.
type InvoiceCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

type NoopInvoiceCache struct{}

func (NoopInvoiceCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopInvoiceCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
