package sessions

import (
	"context"

	"github.com/studysphere/server/internal/domain"
)

// Filter narrows session listings. Zero values mean "no constraint".
type Filter struct {
	TutorEmail string
	Status     domain.SessionStatus
	Limit      int64
}

// Store is the session-collection port. FindByID returns (nil, nil) when
// no document matches. SetFields applies a field-set update by id and
// reports the store's own match/modify counts.
type Store interface {
	Insert(ctx context.Context, s domain.StudySession) (string, error)
	FindByID(ctx context.Context, id string) (*domain.StudySession, error)
	List(ctx context.Context, f Filter) ([]domain.StudySession, error)
	SetFields(ctx context.Context, id string, fields map[string]any) (domain.UpdateCounts, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Service owns the session status lifecycle: pending -> approved/rejected,
// with an explicit revert back to pending. Transitions are unconditional
// field overwrites; the current status is deliberately not checked first,
// so any state can reach any other (last write wins under races).
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, sess domain.StudySession) (string, error) {
	if sess.Status == "" {
		sess.Status = domain.StatusPending
	}
	return s.store.Insert(ctx, sess)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.StudySession, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.StudySession, error) {
	return s.store.List(ctx, f)
}

// Approve sets status=approved with the supplied registration fee and
// clears any earlier rejection reason and feedback.
func (s *Service) Approve(ctx context.Context, id string, registrationFee float64) (domain.UpdateCounts, error) {
	return s.store.SetFields(ctx, id, map[string]any{
		"status":          string(domain.StatusApproved),
		"registrationFee": registrationFee,
		"rejectionReason": nil,
		"feedback":        nil,
	})
}

// Reject sets status=rejected with the supplied reason and feedback.
func (s *Service) Reject(ctx context.Context, id string, reason, feedback string) (domain.UpdateCounts, error) {
	return s.store.SetFields(ctx, id, map[string]any{
		"status":          string(domain.StatusRejected),
		"rejectionReason": reason,
		"feedback":        feedback,
	})
}

// Revert puts a session back to pending and clears the review fields, so
// a rejected session can be resubmitted for approval.
func (s *Service) Revert(ctx context.Context, id string) (domain.UpdateCounts, error) {
	return s.store.SetFields(ctx, id, map[string]any{
		"status":          string(domain.StatusPending),
		"rejectionReason": nil,
		"feedback":        nil,
	})
}

// Update applies a free-form field-set update. The document id is never
// part of the set.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) (domain.UpdateCounts, error) {
	delete(fields, "_id")
	return s.store.SetFields(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	return s.store.Delete(ctx, id)
}
