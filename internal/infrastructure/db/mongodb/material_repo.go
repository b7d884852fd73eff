package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studysphere/server/internal/domain"
)

type MaterialRepo struct {
	col *mongo.Collection
}

func NewMaterialRepo(db *mongo.Database) *MaterialRepo {
	return &MaterialRepo{col: db.Collection("materials")}
}

func (r *MaterialRepo) Insert(ctx context.Context, m domain.Material) (string, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return "", domain.ErrStoreUnavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", domain.ErrInternal(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

func (r *MaterialRepo) List(ctx context.Context) ([]domain.Material, error) {
	return r.find(ctx, bson.M{})
}

func (r *MaterialRepo) ListByTutorEmail(ctx context.Context, email string) ([]domain.Material, error) {
	return r.find(ctx, bson.M{"tutorEmail": email})
}

// ListBySessionIDs backs the booked-session materials view: one query for
// every session id the student booked.
func (r *MaterialRepo) ListBySessionIDs(ctx context.Context, sessionIDs []string) ([]domain.Material, error) {
	return r.find(ctx, bson.M{"sessionId": bson.M{"$in": sessionIDs}})
}

// Update always sets link; image is only overwritten when a new one was
// uploaded with the request.
func (r *MaterialRepo) Update(ctx context.Context, id string, link string, image string) (domain.UpdateCounts, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.UpdateCounts{}, err
	}

	set := bson.M{"link": link}
	if image != "" {
		set["image"] = image
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateCounts{}, domain.ErrStoreUnavailable(err)
	}
	return domain.UpdateCounts{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MaterialRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, domain.ErrStoreUnavailable(err)
	}
	return res.DeletedCount, nil
}

func (r *MaterialRepo) find(ctx context.Context, filter bson.M) ([]domain.Material, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	out := []domain.Material{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}
