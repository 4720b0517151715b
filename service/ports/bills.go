package ports

import (
	"context"

	"travel-cms/invoice"
	"travel-cms/model"
)

type BillRepo interface {
	List(ctx context.Context) ([]model.Bill, error)
	BillNumbers(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (model.Bill, error)
	Create(ctx context.Context, b model.Bill) error
	Replace(ctx context.Context, b model.Bill) error
	Delete(ctx context.Context, id string) error
}

type TourBillRepo interface {
	List(ctx context.Context) ([]model.TourBill, error)
	BillNumbers(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (model.TourBill, error)
	Create(ctx context.Context, b model.TourBill) error
	Replace(ctx context.Context, b model.TourBill) error
	Delete(ctx context.Context, id string) error
}

type Renderer interface {
	Render(doc invoice.Document) ([]byte, error)
}
