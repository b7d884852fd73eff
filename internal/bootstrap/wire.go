package bootstrap

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	appsessions "github.com/studysphere/server/internal/application/sessions"
	appusers "github.com/studysphere/server/internal/application/users"
	"github.com/studysphere/server/internal/config"
	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/infrastructure/db/mongodb"
	"github.com/studysphere/server/internal/infrastructure/payments"
	"github.com/studysphere/server/internal/infrastructure/security"
	"github.com/studysphere/server/internal/logger"
	http_handlers "github.com/studysphere/server/internal/transport/http/handlers"
	"github.com/studysphere/server/internal/transport/http/middleware"
	"github.com/studysphere/server/internal/transport/http/response"
	"github.com/studysphere/server/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	ConnectDB func(ctx context.Context, uri string) (*mongo.Client, error)

	NewIntentCreator func(secretKey string) http_handlers.IntentCreator

	NewRouter func(router.Deps) (http.Handler, error)
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		ConnectDB:  mongodb.Connect,
		NewIntentCreator: func(secretKey string) http_handlers.IntentCreator {
			return payments.NewStripeProvider(secretKey)
		},
		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) document store
	client, err := deps.ConnectDB(context.Background(), cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	logger.Logger.Info().Str("db", cfg.MongoDB).Msg("document store connected")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}

	db := client.Database(cfg.MongoDB)

	// 2) repositories
	userRepo := mongodb.NewUserRepo(db)
	sessionRepo := mongodb.NewSessionRepo(db)
	reviewRepo := mongodb.NewReviewRepo(db)
	bookingRepo := mongodb.NewBookingRepo(db)
	noteRepo := mongodb.NewNoteRepo(db)
	materialRepo := mongodb.NewMaterialRepo(db)
	paymentRepo := mongodb.NewPaymentRepo(db)

	// 3) services
	userSvc := appusers.NewService(userRepo)
	sessionSvc := appsessions.NewService(sessionRepo)

	// 4) token service + payment provider
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.TokenTTL)
	intents := deps.NewIntentCreator(cfg.StripeSecretKey)

	// 5) access gate. The signer secret and the credential store handle
	// are injected here, not held as package globals.
	writeErr := response.WriteError
	authMW := middleware.Auth(signer, writeErr)
	adminMW := middleware.RequireRole(string(domain.RoleAdmin), userSvc, writeErr)

	// 6) router
	handler, err := deps.NewRouter(router.Deps{
		Health:    http_handlers.NewHealthHandler(),
		Token:     http_handlers.NewTokenHandler(signer),
		Users:     http_handlers.NewUserHandler(userSvc),
		Sessions:  http_handlers.NewSessionHandler(sessionSvc),
		Reviews:   http_handlers.NewReviewHandler(reviewRepo),
		Bookings:  http_handlers.NewBookingHandler(bookingRepo),
		Notes:     http_handlers.NewNoteHandler(noteRepo),
		Materials: http_handlers.NewMaterialHandler(materialRepo),
		Payments:  http_handlers.NewPaymentHandler(intents, paymentRepo),
		AuthMW:    authMW,
		AdminMW:   adminMW,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return srv, cleanup, nil
}
