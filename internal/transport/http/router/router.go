package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studysphere/server/internal/transport/http/middleware"
)

type HealthHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
}

type TokenHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	RoleByEmail(w http.ResponseWriter, r *http.Request)
	ListTutors(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListApproved(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByTutor(w http.ResponseWriter, r *http.Request)
	ListApprovedByTutor(w http.ResponseWriter, r *http.Request)
	Revert(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListBySession(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByStudent(w http.ResponseWriter, r *http.Request)
}

type NoteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmail(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MaterialHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByTutor(w http.ResponseWriter, r *http.Request)
	ListBySessions(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health    HealthHandler
	Token     TokenHandler
	Users     UserHandler
	Sessions  SessionHandler
	Reviews   ReviewHandler
	Bookings  BookingHandler
	Notes     NoteHandler
	Materials MaterialHandler
	Payments  PaymentHandler

	// AuthMW authenticates the bearer token; AdminMW additionally checks
	// the caller's stored role. Routes stack neither, one, or both.
	AuthMW  func(http.Handler) http.Handler
	AdminMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Token == nil {
		return nil, fmt.Errorf("nil Token handler")
	}
	if deps.Users == nil {
		return nil, fmt.Errorf("nil Users handler")
	}
	if deps.Sessions == nil {
		return nil, fmt.Errorf("nil Sessions handler")
	}
	if deps.Reviews == nil {
		return nil, fmt.Errorf("nil Reviews handler")
	}
	if deps.Bookings == nil {
		return nil, fmt.Errorf("nil Bookings handler")
	}
	if deps.Notes == nil {
		return nil, fmt.Errorf("nil Notes handler")
	}
	if deps.Materials == nil {
		return nil, fmt.Errorf("nil Materials handler")
	}
	if deps.Payments == nil {
		return nil, fmt.Errorf("nil Payments handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.HTTPLogger)
	r.Use(middleware.CORS())

	r.Get("/", deps.Health.Root)
	r.Post("/jwt", deps.Token.Issue)

	// --- users ---
	r.Post("/users", deps.Users.Create)
	r.With(deps.AuthMW, deps.AdminMW).Get("/users", deps.Users.List)
	r.Get("/users/role/{email}", deps.Users.RoleByEmail)
	r.Get("/users/tutors", deps.Users.ListTutors)
	r.With(deps.AuthMW, deps.AdminMW).Patch("/user/{id}", deps.Users.SetRole)
	r.With(deps.AuthMW, deps.AdminMW).Get("/all-users", deps.Users.Search)

	// --- study sessions ---
	r.With(deps.AuthMW).Post("/sessions", deps.Sessions.Create)
	r.Get("/sessions", deps.Sessions.List)
	r.Get("/sessions/{email}", deps.Sessions.ListByTutor)
	r.Get("/approved-sessions", deps.Sessions.ListApproved)
	r.Get("/approved-sessions/{email}", deps.Sessions.ListApprovedByTutor)
	r.Get("/session/{id}", deps.Sessions.Get)
	r.With(deps.AuthMW).Patch("/session/{id}", deps.Sessions.Revert)
	r.With(deps.AuthMW, deps.AdminMW).Patch("/approve-session/{id}", deps.Sessions.Approve)
	r.With(deps.AuthMW, deps.AdminMW).Patch("/reject-session/{id}", deps.Sessions.Reject)
	r.Patch("/update-session/{id}", deps.Sessions.Update)
	r.Delete("/session/{id}", deps.Sessions.Delete)

	// --- reviews ---
	r.Post("/reviews", deps.Reviews.Create)
	r.Get("/reviews", deps.Reviews.List)
	r.Get("/reviews/{sessionId}", deps.Reviews.ListBySession)

	// --- booked sessions ---
	r.Post("/bookedSessions", deps.Bookings.Create)
	r.Get("/bookedSessions", deps.Bookings.List)
	r.Get("/bookedSessions/{email}", deps.Bookings.ListByStudent)

	// --- notes ---
	r.Post("/notes", deps.Notes.Create)
	r.Get("/notes", deps.Notes.List)
	r.Get("/notes/{email}", deps.Notes.ListByEmail)
	r.Get("/note/{id}", deps.Notes.Get)
	r.Patch("/note/{id}", deps.Notes.Update)
	r.Delete("/note/{id}", deps.Notes.Delete)

	// --- study materials ---
	r.Post("/materials", deps.Materials.Create)
	r.Get("/materials", deps.Materials.List)
	r.Get("/materials/{email}", deps.Materials.ListByTutor)
	r.Get("/studyMaterials", deps.Materials.ListBySessions)
	r.Patch("/material/{id}", deps.Materials.Update)
	r.Delete("/material/{id}", deps.Materials.Delete)

	// --- payments ---
	r.Post("/create-payment-intent", deps.Payments.CreateIntent)
	r.Post("/payments", deps.Payments.Create)

	return r, nil
}
