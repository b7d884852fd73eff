package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studysphere/server/internal/domain"
)

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

// FindByEmail returns (nil, nil) when no user matches; absence is not an
// error on this surface.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.ErrStoreUnavailable(err)
	}
	return &u, nil
}

func (r *UserRepo) Insert(ctx context.Context, u domain.User) (string, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return "", domain.ErrStoreUnavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", domain.ErrInternal(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

func (r *UserRepo) SetRole(ctx context.Context, id string, role string) (domain.UpdateCounts, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.UpdateCounts{}, err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return domain.UpdateCounts{}, domain.ErrStoreUnavailable(err)
	}
	return domain.UpdateCounts{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

// SearchByName is the admin search: case-insensitive substring match.
func (r *UserRepo) SearchByName(ctx context.Context, search string) ([]domain.User, error) {
	return r.find(ctx, bson.M{"name": primitive.Regex{Pattern: search, Options: "i"}})
}

func (r *UserRepo) find(ctx context.Context, filter bson.M) ([]domain.User, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	out := []domain.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}
