package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"travel-cms/model"
)

type BillRepository struct {
	store[model.Bill]
}

func NewBillRepository(db *mongo.Database) *BillRepository {
	return &BillRepository{store[model.Bill]{
		coll:   db.Collection(BillsCollection),
		entity: "bill",
		unique: "billNo",
		key:    func(b model.Bill) string { return b.BillNo.String() },
	}}
}

func (r *BillRepository) List(ctx context.Context) ([]model.Bill, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *BillRepository) BillNumbers(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "billNo")
}

func (r *BillRepository) Get(ctx context.Context, id string) (model.Bill, error) {
	return r.get(ctx, id)
}

func (r *BillRepository) Create(ctx context.Context, b model.Bill) error {
	return r.insert(ctx, b)
}

func (r *BillRepository) Replace(ctx context.Context, b model.Bill) error {
	return r.replace(ctx, b.Id, b)
}

func (r *BillRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type TourBillRepository struct {
	store[model.TourBill]
}

func NewTourBillRepository(db *mongo.Database) *TourBillRepository {
	return &TourBillRepository{store[model.TourBill]{
		coll:   db.Collection(TourBillsCollection),
		entity: "tour bill",
		unique: "billNo",
		key:    func(b model.TourBill) string { return b.BillNo.String() },
	}}
}

func (r *TourBillRepository) List(ctx context.Context) ([]model.TourBill, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *TourBillRepository) BillNumbers(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "billNo")
}

func (r *TourBillRepository) Get(ctx context.Context, id string) (model.TourBill, error) {
	return r.get(ctx, id)
}

func (r *TourBillRepository) Create(ctx context.Context, b model.TourBill) error {
	return r.insert(ctx, b)
}

func (r *TourBillRepository) Replace(ctx context.Context, b model.TourBill) error {
	return r.replace(ctx, b.Id, b)
}

func (r *TourBillRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
