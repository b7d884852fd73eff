package sessions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studysphere/server/internal/application/sessions"
	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }

func seedSession(t *testing.T, store *memory.SessionRepo, s domain.StudySession) string {
	t.Helper()
	id, err := store.Insert(context.Background(), s)
	require.NoError(t, err)
	return id
}

func TestCreate_DefaultsToPending(t *testing.T) {
	store := memory.NewSessionRepo()
	svc := sessions.NewService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, domain.StudySession{Title: "Algebra", TutorEmail: "t@x.com"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.StatusPending, got.Status)
}

func TestApprove_OverwritesRegardlessOfPriorStatus(t *testing.T) {
	store := memory.NewSessionRepo()
	svc := sessions.NewService(store)
	ctx := context.Background()

	// currently rejected; approve must still win (no precondition check)
	id := seedSession(t, store, domain.StudySession{
		Title:           "Geometry",
		TutorEmail:      "t@x.com",
		Status:          domain.StatusRejected,
		RejectionReason: strPtr("too vague"),
		Feedback:        strPtr("add a syllabus"),
	})

	counts, err := svc.Approve(ctx, id, 50)
	require.NoError(t, err)
	require.Equal(t, int64(1), counts.MatchedCount)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, got.Status)
	require.Equal(t, float64(50), got.RegistrationFee)
	require.Nil(t, got.RejectionReason)
	require.Nil(t, got.Feedback)
}

func TestReject_SetsReasonAndFeedback(t *testing.T) {
	store := memory.NewSessionRepo()
	svc := sessions.NewService(store)
	ctx := context.Background()

	id := seedSession(t, store, domain.StudySession{
		Title:      "Calculus",
		TutorEmail: "t@x.com",
		Status:     domain.StatusApproved,
	})

	_, err := svc.Reject(ctx, id, "fee too high", "lower the fee")
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, got.Status)
	require.NotNil(t, got.RejectionReason)
	require.Equal(t, "fee too high", *got.RejectionReason)
	require.NotNil(t, got.Feedback)
	require.Equal(t, "lower the fee", *got.Feedback)
}

func TestRevert_ClearsReviewFields(t *testing.T) {
	store := memory.NewSessionRepo()
	svc := sessions.NewService(store)
	ctx := context.Background()

	id := seedSession(t, store, domain.StudySession{
		Title:           "Physics",
		TutorEmail:      "t@x.com",
		Status:          domain.StatusRejected,
		RejectionReason: strPtr("duplicate"),
		Feedback:        strPtr("merge with the other listing"),
	})

	_, err := svc.Revert(ctx, id)
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
	require.Nil(t, got.RejectionReason)
	require.Nil(t, got.Feedback)
}

func TestUpdate_StripsDocumentID(t *testing.T) {
	store := memory.NewSessionRepo()
	svc := sessions.NewService(store)
	ctx := context.Background()

	id := seedSession(t, store, domain.StudySession{Title: "Old", TutorEmail: "t@x.com", Status: domain.StatusPending})

	_, err := svc.Update(ctx, id, map[string]any{"_id": "evil", "sessionTitle": "New"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "New", got.Title)
	require.Equal(t, id, got.ID.Hex())
}

func TestGet_AbsentSessionIsNil(t *testing.T) {
	svc := sessions.NewService(memory.NewSessionRepo())

	got, err := svc.Get(context.Background(), "65f000000000000000000000")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestList_FiltersByTutorAndStatus(t *testing.T) {
	store := memory.NewSessionRepo()
	svc := sessions.NewService(store)
	ctx := context.Background()

	seedSession(t, store, domain.StudySession{TutorEmail: "t@x.com", Status: domain.StatusApproved})
	seedSession(t, store, domain.StudySession{TutorEmail: "t@x.com", Status: domain.StatusPending})
	seedSession(t, store, domain.StudySession{TutorEmail: "other@x.com", Status: domain.StatusApproved})

	got, err := svc.List(ctx, sessions.Filter{TutorEmail: "t@x.com", Status: domain.StatusApproved})
	require.NoError(t, err)
	require.Len(t, got, 1)

	all, err := svc.List(ctx, sessions.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestDelete_ReportsDeletedCount(t *testing.T) {
	store := memory.NewSessionRepo()
	svc := sessions.NewService(store)
	ctx := context.Background()

	id := seedSession(t, store, domain.StudySession{Title: "Gone", TutorEmail: "t@x.com"})

	n, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	require.Zero(t, n)
}
