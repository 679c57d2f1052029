package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/server/auth"
	sc "github.com/guptaRishi00/waflow/internal/server/config"
	"github.com/guptaRishi00/waflow/internal/server/models"
)

func userFixture(t *testing.T) (*UserService, *fakeUsersRepo, *fakeRefreshRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	customer := &models.User{ID: "cust-1", Email: "c@example.ae", Role: models.RoleCustomer, PasswordHash: hash}
	users := &fakeUsersRepo{
		byID:    map[string]*models.User{"cust-1": customer},
		byEmail: map[string]*models.User{"c@example.ae": customer},
	}
	refresh := &fakeRefreshRepo{}
	rm := &fakeRepoManager{users: users, refresh: refresh}

	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return NewUserService(db, rm, cfg), users, refresh, mock
}

func TestLogin_Success(t *testing.T) {
	svc, _, refresh, _ := userFixture(t)

	user, pair, err := svc.Login(context.Background(), "c@example.ae", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", user.ID)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Contains(t, refresh.tokens, pair.RefreshToken)

	claims, err := auth.ParseToken(pair.AccessToken, []byte("secretKey"))
	require.NoError(t, err)
	assert.Equal(t, "cust-1", claims.UserID)
	assert.Equal(t, string(models.RoleCustomer), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _, _ := userFixture(t)

	_, _, err := svc.Login(context.Background(), "c@example.ae", "nope")
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	svc, _, _, _ := userFixture(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.ae", "whatever")
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	svc, _, refresh, mock := userFixture(t)
	require.NoError(t, refresh.Create(context.Background(), "cust-1", "old-token", time.Hour))

	sqlMockExpectTx(t, mock)

	got, err := svc.RefreshToken(context.Background(), "old-token")
	require.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)
	assert.NotContains(t, refresh.tokens, "old-token")
	assert.Contains(t, refresh.tokens, got.RefreshToken)
}

func TestRefreshToken_Expired(t *testing.T) {
	svc, _, refresh, _ := userFixture(t)
	require.NoError(t, refresh.Create(context.Background(), "cust-1", "stale", -time.Minute))

	_, err := svc.RefreshToken(context.Background(), "stale")
	assert.True(t, errors.Is(err, common.ErrRefreshTokenExpired))
}

func TestRefreshToken_Unknown(t *testing.T) {
	svc, _, _, _ := userFixture(t)

	_, err := svc.RefreshToken(context.Background(), "never-issued")
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _, refresh, _ := userFixture(t)
	require.NoError(t, refresh.Create(context.Background(), "cust-1", "tok", time.Hour))

	require.NoError(t, svc.Logout(context.Background(), "tok"))
	assert.NotContains(t, refresh.tokens, "tok")
}

func TestCreateCustomer_StaffOnly(t *testing.T) {
	svc, users, _, _ := userFixture(t)

	_, err := svc.CreateCustomer(context.Background(), customerActor(), &models.User{Email: "x@example.ae"}, "pw")
	assert.True(t, errors.Is(err, common.ErrorForbidden))
	assert.Empty(t, users.created)
}

func TestCreateCustomer_ForcesCustomerRoleAndHashesPassword(t *testing.T) {
	svc, users, _, _ := userFixture(t)

	in := &models.User{Email: "new@example.ae", FirstName: "New", Role: models.RoleManager}
	created, err := svc.CreateCustomer(context.Background(), agentActor(), in, "hunter2")
	require.NoError(t, err)
	require.Len(t, users.created, 1)
	assert.Equal(t, models.RoleCustomer, created.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(created.PasswordHash, []byte("hunter2")))
}

func TestCreateCustomer_MissingFields(t *testing.T) {
	svc, _, _, _ := userFixture(t)

	_, err := svc.CreateCustomer(context.Background(), agentActor(), &models.User{}, "pw")
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestGetByID_CustomerSelfOnly(t *testing.T) {
	svc, _, _, _ := userFixture(t)

	_, err := svc.GetByID(context.Background(), customerActor(), "cust-1")
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), customerActor(), "agent-1")
	assert.True(t, errors.Is(err, common.ErrorForbidden))
}

func TestListByRole_StaffOnly(t *testing.T) {
	svc, _, _, _ := userFixture(t)

	list, err := svc.ListByRole(context.Background(), agentActor(), models.RoleCustomer)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByRole(context.Background(), customerActor(), models.RoleCustomer)
	assert.True(t, errors.Is(err, common.ErrorForbidden))
}
