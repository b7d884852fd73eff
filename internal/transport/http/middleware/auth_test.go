package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/infrastructure/security"
)

// ---- fakes ----

type fakeVerifier struct {
	claims security.Claims
	err    error
	calls  int
	gotTok string
}

func (f *fakeVerifier) Verify(token string) (security.Claims, error) {
	f.calls++
	f.gotTok = token
	return f.claims, f.err
}

type writeErrRecorder struct {
	calls int
	last  error
}

func (w *writeErrRecorder) fn(_ http.ResponseWriter, _ *http.Request, err error) {
	w.calls++
	w.last = err
}

// next handler checks context injection
type nextRecorder struct {
	calls    int
	gotEmail string
}

func (n *nextRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.calls++
	email, _ := EmailFromContext(r.Context())
	n.gotEmail = email
	w.WriteHeader(http.StatusOK)
}

// helper to run middleware around a handler
func runAuthMW(t *testing.T, verifier TokenVerifier, req *http.Request) (*writeErrRecorder, *nextRecorder) {
	t.Helper()

	rr := httptest.NewRecorder()
	we := &writeErrRecorder{}
	nx := &nextRecorder{}

	h := Auth(verifier, we.fn)(nx)
	h.ServeHTTP(rr, req)

	return we, nx
}

// ---- tests ----

func TestAuth_MissingAuthorizationHeader_ReturnsTokenMissing(t *testing.T) {
	v := &fakeVerifier{}
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	we, nx := runAuthMW(t, v, req)

	if nx.calls != 0 {
		t.Fatalf("expected next not called")
	}
	if we.calls != 1 {
		t.Fatalf("expected writeErr called once, got %d", we.calls)
	}
	if !domain.Is(we.last, "token_missing") {
		t.Fatalf("expected token_missing, got %v", we.last)
	}
	if v.calls != 0 {
		t.Fatalf("verifier should not be called when header missing")
	}
}

func TestAuth_BadAuthorizationScheme_ReturnsTokenInvalid(t *testing.T) {
	v := &fakeVerifier{}
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Basic abc")

	we, nx := runAuthMW(t, v, req)

	if nx.calls != 0 {
		t.Fatalf("expected next not called")
	}
	if !domain.Is(we.last, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", we.last)
	}
	if v.calls != 0 {
		t.Fatalf("verifier should not be called for a non-bearer scheme")
	}
}

func TestAuth_EmptyBearerToken_ReturnsTokenInvalid(t *testing.T) {
	v := &fakeVerifier{}
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer   ")

	we, nx := runAuthMW(t, v, req)

	if nx.calls != 0 {
		t.Fatalf("expected next not called")
	}
	if !domain.Is(we.last, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", we.last)
	}
}

func TestAuth_VerifierError_Propagates(t *testing.T) {
	v := &fakeVerifier{err: domain.ErrTokenExpired()}
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer sometoken")

	we, nx := runAuthMW(t, v, req)

	if nx.calls != 0 {
		t.Fatalf("expected next not called")
	}
	if !domain.Is(we.last, "token_expired") {
		t.Fatalf("expected token_expired, got %v", we.last)
	}
	if v.gotTok != "sometoken" {
		t.Fatalf("verifier got %q, want sometoken", v.gotTok)
	}
}

func TestAuth_ValidToken_InjectsClaims(t *testing.T) {
	v := &fakeVerifier{claims: security.Claims{"email": "a@x.com"}}
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer good")

	we, nx := runAuthMW(t, v, req)

	if we.calls != 0 {
		t.Fatalf("expected no error, got %v", we.last)
	}
	if nx.calls != 1 {
		t.Fatalf("expected next called once, got %d", nx.calls)
	}
	if nx.gotEmail != "a@x.com" {
		t.Fatalf("email in context = %q, want a@x.com", nx.gotEmail)
	}
}
