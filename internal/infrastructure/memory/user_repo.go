package memory

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studysphere/server/internal/domain"
)

// UserRepo is an in-memory credential store used by tests and local runs
// without a database.
type UserRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byID: make(map[string]domain.User)}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Insert(ctx context.Context, u domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.byID[u.ID.Hex()] = u
	return u.ID.Hex(), nil
}

func (r *UserRepo) SetRole(ctx context.Context, id string, role string) (domain.UpdateCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.UpdateCounts{}, nil
	}
	modified := int64(0)
	if u.Role != role {
		u.Role = role
		r.byID[id] = u
		modified = 1
	}
	return domain.UpdateCounts{MatchedCount: 1, ModifiedCount: modified}, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.User{}
	for _, u := range r.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepo) SearchByName(ctx context.Context, search string) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	out := []domain.User{}
	for _, u := range r.byID {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			out = append(out, u)
		}
	}
	return out, nil
}
