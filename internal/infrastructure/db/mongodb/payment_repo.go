package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studysphere/server/internal/domain"
)

type PaymentRepo struct {
	col *mongo.Collection
}

func NewPaymentRepo(db *mongo.Database) *PaymentRepo {
	return &PaymentRepo{col: db.Collection("payments")}
}

func (r *PaymentRepo) Insert(ctx context.Context, p domain.Payment) (string, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", domain.ErrStoreUnavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", domain.ErrInternal(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}
