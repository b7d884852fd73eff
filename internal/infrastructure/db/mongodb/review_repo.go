package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studysphere/server/internal/domain"
)

type ReviewRepo struct {
	col *mongo.Collection
}

func NewReviewRepo(db *mongo.Database) *ReviewRepo {
	return &ReviewRepo{col: db.Collection("reviews")}
}

func (r *ReviewRepo) Insert(ctx context.Context, rev domain.Review) (string, error) {
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		return "", domain.ErrStoreUnavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", domain.ErrInternal(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReviewRepo) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Review, error) {
	return r.find(ctx, bson.M{"sessionId": sessionID})
}

func (r *ReviewRepo) find(ctx context.Context, filter bson.M) ([]domain.Review, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	out := []domain.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}
