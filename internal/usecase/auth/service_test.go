package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetsum/meeting-summarizer/errors"
	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/pkg/jwt"
)

type fakeUserRepo struct {
	upserted []*entities.User
}

func (f *fakeUserRepo) Upsert(ctx context.Context, user *entities.User) error {
	f.upserted = append(f.upserted, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range f.upserted {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func newTestService(expiry time.Duration) (Service, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return NewService(repo, jwt.NewManager("test-secret", expiry), zap.NewNop()), repo
}

func TestDevLoginRejectsShortPassword(t *testing.T) {
	svc, repo := newTestService(time.Hour)

	_, _, err := svc.DevLogin(context.Background(), "alice@example.com", "ab", "Alice")
	if !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(repo.upserted) != 0 {
		t.Fatalf("no user should be upserted on a rejected login, got %d", len(repo.upserted))
	}
}

func TestDevLoginIssuesResolvableToken(t *testing.T) {
	svc, repo := newTestService(time.Hour)

	user, token, err := svc.DevLogin(context.Background(), "  Alice@Example.COM ", "secret", "")
	if err != nil {
		t.Fatalf("DevLogin failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", user.Email)
	}
	if user.Name != "alice" {
		t.Fatalf("name = %q, want local part default", user.Name)
	}
	if want := entities.UserIDFromEmail("alice@example.com"); user.ID != want {
		t.Fatalf("id = %s, want stable id %s", user.ID, want)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("upserted %d users, want 1", len(repo.upserted))
	}

	claims, err := svc.ResolveToken(token)
	if err != nil {
		t.Fatalf("ResolveToken failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("claims user id = %s, want %s", claims.UserID, user.ID)
	}

	// The same email logs in to the same account.
	again, _, err := svc.DevLogin(context.Background(), "alice@example.com", "other-pass", "Alice")
	if err != nil {
		t.Fatalf("second DevLogin failed: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("second login id = %s, want %s", again.ID, user.ID)
	}
}

func TestResolveTokenExpired(t *testing.T) {
	svc, _ := newTestService(-time.Hour)

	_, token, err := svc.DevLogin(context.Background(), "bob@example.com", "secret", "Bob")
	if err != nil {
		t.Fatalf("DevLogin failed: %v", err)
	}

	_, err = svc.ResolveToken(token)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_AUTH_TOKEN_EXPIRED {
		t.Fatalf("err = %v, want AUTH_TOKEN_EXPIRED app error", err)
	}
}

func TestResolveTokenGarbage(t *testing.T) {
	svc, _ := newTestService(time.Hour)

	_, err := svc.ResolveToken("not-a-token")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_AUTH_INVALID_TOKEN {
		t.Fatalf("err = %v, want AUTH_INVALID_TOKEN app error", err)
	}
}
