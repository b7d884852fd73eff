package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studysphere/server/internal/application/sessions"
	"github.com/studysphere/server/internal/domain"
)

// SessionRepo mirrors the document store's field-set update semantics on
// the known session fields, so lifecycle tests exercise the same shape the
// real collection receives.
type SessionRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.StudySession
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{byID: make(map[string]domain.StudySession)}
}

func (r *SessionRepo) Insert(ctx context.Context, s domain.StudySession) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.byID[s.ID.Hex()] = s
	return s.ID.Hex(), nil
}

func (r *SessionRepo) FindByID(ctx context.Context, id string) (*domain.StudySession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (r *SessionRepo) List(ctx context.Context, f sessions.Filter) ([]domain.StudySession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.StudySession{}
	for _, s := range r.byID {
		if f.TutorEmail != "" && s.TutorEmail != f.TutorEmail {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		out = append(out, s)
		if f.Limit > 0 && int64(len(out)) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *SessionRepo) SetFields(ctx context.Context, id string, fields map[string]any) (domain.UpdateCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return domain.UpdateCounts{}, nil
	}

	for k, v := range fields {
		switch k {
		case "status":
			if sv, ok := v.(string); ok {
				s.Status = domain.SessionStatus(sv)
			}
		case "registrationFee":
			switch fv := v.(type) {
			case float64:
				s.RegistrationFee = fv
			case int:
				s.RegistrationFee = float64(fv)
			}
		case "rejectionReason":
			s.RejectionReason = toStringPtr(v)
		case "feedback":
			s.Feedback = toStringPtr(v)
		case "sessionTitle":
			if sv, ok := v.(string); ok {
				s.Title = sv
			}
		case "sessionDescription":
			if sv, ok := v.(string); ok {
				s.Description = sv
			}
		}
	}

	r.byID[id] = s
	return domain.UpdateCounts{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func toStringPtr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
