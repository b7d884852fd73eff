package users

import (
	"context"
	"strings"

	"github.com/studysphere/server/internal/domain"
)

// Store is the credential-store port. Finds return (nil, nil) when no
// document matches; only infrastructure failures surface as errors.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u domain.User) (string, error)
	SetRole(ctx context.Context, id string, role string) (domain.UpdateCounts, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	SearchByName(ctx context.Context, search string) ([]domain.User, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateResult mirrors the store's insert acknowledgement. InsertedID is
// nil when the email already existed and nothing was written.
type CreateResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// Create inserts a user unless one with the same email already exists.
// Duplicate attempts are no-ops that report the existing record.
func (s *Service) Create(ctx context.Context, u domain.User) (CreateResult, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" {
		return CreateResult{}, domain.ErrMissingField("email")
	}

	existing, err := s.store.FindByEmail(ctx, u.Email)
	if err != nil {
		return CreateResult{}, err
	}
	if existing != nil {
		return CreateResult{Message: "user already exists", InsertedID: nil}, nil
	}

	id, err := s.store.Insert(ctx, u)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{InsertedID: &id}, nil
}

// RoleFor returns the stored role for email, or student when the user is
// absent or has no role record. Absence never grants elevated access.
func (s *Service) RoleFor(ctx context.Context, email string) (string, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return string(domain.RoleStudent), nil
	}
	return u.EffectiveRole(), nil
}

// SetRole changes a user's role. Only admins reach this through the gate.
func (s *Service) SetRole(ctx context.Context, id string, role string) (domain.UpdateCounts, error) {
	if !domain.IsValidRole(role) {
		return domain.UpdateCounts{}, domain.ErrInvalidRole(role)
	}
	return s.store.SetRole(ctx, id, role)
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.store.List(ctx)
}

func (s *Service) ListTutors(ctx context.Context) ([]domain.User, error) {
	return s.store.ListByRole(ctx, string(domain.RoleTutor))
}

// Search performs the admin case-insensitive substring search on name.
func (s *Service) Search(ctx context.Context, search string) ([]domain.User, error) {
	return s.store.SearchByName(ctx, search)
}
