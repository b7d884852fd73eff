package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

type fakeServer struct {
	addr string

	listenErr   error
	shutdownErr error
	closeErr    error

	listenCalled   bool
	shutdownCalled bool
	closeCalled    bool
}

func (f *fakeServer) ListenAndServe() error {
	f.listenCalled = true
	return f.listenErr
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.shutdownCalled = true
	return f.shutdownErr
}

func (f *fakeServer) Close() error {
	f.closeCalled = true
	return f.closeErr
}

func (f *fakeServer) Addr() string { return f.addr }

func TestRun_BootstrapFailure(t *testing.T) {
	build := func() (httpServer, func(), error) {
		return nil, func() {}, errors.New("no document store")
	}

	sigCh := make(chan os.Signal, 1)
	if got := Run(build, sigCh, zerolog.Nop()); got != 1 {
		t.Fatalf("expected exit code 1, got %d", got)
	}
}

func TestRun_SignalTriggersGracefulShutdown(t *testing.T) {
	// Pre-send the signal so Run() takes the signal path deterministically.
	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	fs := &fakeServer{
		addr:      ":0",
		listenErr: http.ErrServerClosed,
	}

	cleanupCalled := false
	build := func() (httpServer, func(), error) {
		return fs, func() { cleanupCalled = true }, nil
	}

	if got := Run(build, sigCh, zerolog.Nop()); got != 0 {
		t.Fatalf("expected exit code 0, got %d", got)
	}
	if !fs.listenCalled {
		t.Fatal("expected ListenAndServe to be called")
	}
	if !fs.shutdownCalled {
		t.Fatal("expected Shutdown to be called")
	}
	if fs.closeCalled {
		t.Fatal("did not expect Close on a graceful shutdown")
	}
	if !cleanupCalled {
		t.Fatal("expected the store cleanup to run")
	}
}

func TestRun_ServerCrash(t *testing.T) {
	fs := &fakeServer{
		addr:      ":0",
		listenErr: errors.New("listen tcp: address in use"),
	}

	cleanupCalled := false
	build := func() (httpServer, func(), error) {
		return fs, func() { cleanupCalled = true }, nil
	}

	sigCh := make(chan os.Signal, 1)
	if got := Run(build, sigCh, zerolog.Nop()); got != 1 {
		t.Fatalf("expected exit code 1, got %d", got)
	}
	// the crash path exits directly; there is nothing left to shut down
	if fs.shutdownCalled {
		t.Fatal("did not expect Shutdown on the crash path")
	}
	if !cleanupCalled {
		t.Fatal("expected the store cleanup to run")
	}
}

func TestRun_ShutdownFailureForcesClose(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	fs := &fakeServer{
		addr:        ":0",
		listenErr:   http.ErrServerClosed,
		shutdownErr: errors.New("connections still draining"),
	}

	build := func() (httpServer, func(), error) {
		return fs, func() {}, nil
	}

	_ = Run(build, sigCh, zerolog.Nop())

	if !fs.shutdownCalled {
		t.Fatal("expected Shutdown to be called")
	}
	if !fs.closeCalled {
		t.Fatal("expected Close when Shutdown fails")
	}
}
