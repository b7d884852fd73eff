package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studysphere/server/internal/domain"
)

type BookingRepo struct {
	col *mongo.Collection
}

func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{col: db.Collection("bookedSession")}
}

func (r *BookingRepo) Insert(ctx context.Context, b domain.BookedSession) (string, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return "", domain.ErrStoreUnavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", domain.ErrInternal(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

func (r *BookingRepo) List(ctx context.Context) ([]domain.BookedSession, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingRepo) ListByStudentEmail(ctx context.Context, email string) ([]domain.BookedSession, error) {
	return r.find(ctx, bson.M{"studentEmail": email})
}

func (r *BookingRepo) find(ctx context.Context, filter bson.M) ([]domain.BookedSession, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	out := []domain.BookedSession{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}
