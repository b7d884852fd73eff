package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studysphere/server/internal/application/sessions"
	"github.com/studysphere/server/internal/domain"
)

type SessionRepo struct {
	col *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) *SessionRepo {
	return &SessionRepo{col: db.Collection("sessions")}
}

func (r *SessionRepo) Insert(ctx context.Context, s domain.StudySession) (string, error) {
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return "", domain.ErrStoreUnavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", domain.ErrInternal(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

func (r *SessionRepo) FindByID(ctx context.Context, id string) (*domain.StudySession, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var s domain.StudySession
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.ErrStoreUnavailable(err)
	}
	return &s, nil
}

func (r *SessionRepo) List(ctx context.Context, f sessions.Filter) ([]domain.StudySession, error) {
	filter := bson.M{}
	if f.TutorEmail != "" {
		filter["tutorEmail"] = f.TutorEmail
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}

	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	out := []domain.StudySession{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

// SetFields applies a field-set update by id. The set is written as-is:
// lifecycle transitions rely on overwriting status and clearing the review
// fields with explicit nulls.
func (r *SessionRepo) SetFields(ctx context.Context, id string, fields map[string]any) (domain.UpdateCounts, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.UpdateCounts{}, err
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateCounts{}, domain.ErrStoreUnavailable(err)
	}
	return domain.UpdateCounts{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) (int64, error) {
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
