package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/pdf"
)

func sampleOrder() *entity.OrderDetail {
	return &entity.OrderDetail{
		Order: entity.Order{
			ID: "o-1", OrderNumber: "ORD-9921", CustomerName: "Alex Johnson", StoreName: "Downtown Branch",
			TotalAmount: decimal.RequireFromString("128.50"), Status: entity.OrderCompleted, ItemsCount: 2,
			CreatedAt: time.Date(2023, 10, 24, 10, 42, 0, 0, time.UTC),
		},
		Customer: entity.Customer{Name: "Alex Johnson", Email: "alex@example.com"},
		Store:    entity.StoreRef{ID: "s-1", Name: "Downtown Branch"},
		Items: []entity.OrderItem{
			{ProductID: "p-1", Name: "Organic Milk", SKU: "MLK-001", Quantity: 2, UnitPrice: decimal.RequireFromString("4.25")},
			{ProductID: "p-2", Name: "Nike Air Max", SKU: "NK-270", Quantity: 1, UnitPrice: decimal.NewFromInt(110), Subtotal: decimal.NewFromInt(110)},
		},
		Subtotal:      decimal.RequireFromString("118.50"),
		Tax:           decimal.NewFromInt(10),
		PaymentMethod: "Visa ending 4242",
	}
}

func TestOrderReceipt(t *testing.T) {
	doc, err := pdf.NewReceiptGenerator("").OrderReceipt(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un PDF")
}

func TestOrderReceipt_Nil(t *testing.T) {
	_, err := pdf.NewReceiptGenerator("").OrderReceipt(context.Background(), nil)
	assert.Error(t, err)
}

func TestOrderReceipt_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewReceiptGenerator("").OrderReceipt(ctx, sampleOrder())
	assert.ErrorIs(t, err, context.Canceled)
}
