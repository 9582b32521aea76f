package ports

import (
	"context"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// ReceiptRenderer genera el comprobante PDF de una orden.
type ReceiptRenderer interface {
	OrderReceipt(ctx context.Context, order *entity.OrderDetail) ([]byte, error)
}
