package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studysphere/server/internal/domain"
)

type NoteRepo struct {
	col *mongo.Collection
}

func NewNoteRepo(db *mongo.Database) *NoteRepo {
	return &NoteRepo{col: db.Collection("notes")}
}

func (r *NoteRepo) Insert(ctx context.Context, n domain.Note) (string, error) {
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return "", domain.ErrStoreUnavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", domain.ErrInternal(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

func (r *NoteRepo) List(ctx context.Context) ([]domain.Note, error) {
	return r.find(ctx, bson.M{})
}

func (r *NoteRepo) ListByEmail(ctx context.Context, email string) ([]domain.Note, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *NoteRepo) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var n domain.Note
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.ErrStoreUnavailable(err)
	}
	return &n, nil
}

func (r *NoteRepo) Update(ctx context.Context, id string, title, description string) (domain.UpdateCounts, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.UpdateCounts{}, err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
	}})
	if err != nil {
		return domain.UpdateCounts{}, domain.ErrStoreUnavailable(err)
	}
	return domain.UpdateCounts{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *NoteRepo) Delete(ctx context.Context, id string) (int64, error) {
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

func (r *NoteRepo) find(ctx context.Context, filter bson.M) ([]domain.Note, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	out := []domain.Note{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}
