package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studysphere/server/internal/application/users"
	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/infrastructure/memory"
)

func TestCreate_InsertsNewUser(t *testing.T) {
	svc := users.NewService(memory.NewUserRepo())

	res, err := svc.Create(context.Background(), domain.User{Email: "a@x.com", Name: "Ada"})
	require.NoError(t, err)
	require.NotNil(t, res.InsertedID)
	require.Empty(t, res.Message)
}

func TestCreate_DuplicateEmailIsNoOp(t *testing.T) {
	store := memory.NewUserRepo()
	svc := users.NewService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.User{Email: "a@x.com", Name: "Ada"})
	require.NoError(t, err)

	res, err := svc.Create(ctx, domain.User{Email: "A@x.com ", Name: "Imposter"})
	require.NoError(t, err)
	require.Nil(t, res.InsertedID)
	require.Equal(t, "user already exists", res.Message)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Ada", all[0].Name)
}

func TestCreate_MissingEmail(t *testing.T) {
	svc := users.NewService(memory.NewUserRepo())

	_, err := svc.Create(context.Background(), domain.User{Name: "Nobody"})
	require.True(t, domain.Is(err, "missing_field"))
}

func TestRoleFor_DefaultsToStudent(t *testing.T) {
	store := memory.NewUserRepo()
	svc := users.NewService(store)
	ctx := context.Background()

	// absent user
	role, err := svc.RoleFor(ctx, "ghost@x.com")
	require.NoError(t, err)
	require.Equal(t, "student", role)

	// present user with no role record
	_, err = store.Insert(ctx, domain.User{Email: "plain@x.com", Name: "Plain"})
	require.NoError(t, err)
	role, err = svc.RoleFor(ctx, "plain@x.com")
	require.NoError(t, err)
	require.Equal(t, "student", role)
}

func TestRoleFor_ReturnsStoredRole(t *testing.T) {
	store := memory.NewUserRepo()
	svc := users.NewService(store)
	ctx := context.Background()

	_, err := store.Insert(ctx, domain.User{Email: "t@x.com", Name: "Tina", Role: "tutor"})
	require.NoError(t, err)

	role, err := svc.RoleFor(ctx, "t@x.com")
	require.NoError(t, err)
	require.Equal(t, "tutor", role)
}

func TestSetRole_RejectsUnknownRole(t *testing.T) {
	svc := users.NewService(memory.NewUserRepo())

	_, err := svc.SetRole(context.Background(), "someid", "superuser")
	require.True(t, domain.Is(err, "invalid_role"))
}

func TestSetRole_UpdatesUser(t *testing.T) {
	store := memory.NewUserRepo()
	svc := users.NewService(store)
	ctx := context.Background()

	id, err := store.Insert(ctx, domain.User{Email: "u@x.com", Name: "U"})
	require.NoError(t, err)

	counts, err := svc.SetRole(ctx, id, "admin")
	require.NoError(t, err)
	require.Equal(t, int64(1), counts.MatchedCount)

	role, err := svc.RoleFor(ctx, "u@x.com")
	require.NoError(t, err)
	require.Equal(t, "admin", role)
}

func TestListTutors_FiltersByRole(t *testing.T) {
	store := memory.NewUserRepo()
	svc := users.NewService(store)
	ctx := context.Background()

	_, _ = store.Insert(ctx, domain.User{Email: "s@x.com", Role: "student"})
	_, _ = store.Insert(ctx, domain.User{Email: "t1@x.com", Role: "tutor"})
	_, _ = store.Insert(ctx, domain.User{Email: "t2@x.com", Role: "tutor"})

	tutors, err := svc.ListTutors(ctx)
	require.NoError(t, err)
	require.Len(t, tutors, 2)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	store := memory.NewUserRepo()
	svc := users.NewService(store)
	ctx := context.Background()

	_, _ = store.Insert(ctx, domain.User{Email: "a@x.com", Name: "Alice Johnson"})
	_, _ = store.Insert(ctx, domain.User{Email: "b@x.com", Name: "Bob Jones"})
	_, _ = store.Insert(ctx, domain.User{Email: "c@x.com", Name: "Carol"})

	got, err := svc.Search(ctx, "jo")
	require.NoError(t, err)
	require.Len(t, got, 2)
}
