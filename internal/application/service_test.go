package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports/mocks"
)

func TestServiceSetPasswordSuccess(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	store := mocks.NewMockSecretStore(t)
	service := NewService(accounts, store)

	account := cachedAccount("alice")
	account.User.Password = "plain"
	config := newMemoryConfig(account)

	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(config, nil).Once()
	store.EXPECT().Put(mockAnyContext(), "checkin/accounts/alice/password", "s3cret").Return(nil).Once()

	err := service.SetPassword(context.Background(), "alice", "", "s3cret")
	require.NoError(t, err)

	user := config.UserInfo()
	assert.Empty(t, user.Password)
	assert.Empty(t, user.Token)
	assert.Equal(t, "checkin/accounts/alice/password", user.PasswordRef)
}

func TestServiceSetPasswordRotationDeletesPreviousSecret(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	store := mocks.NewMockSecretStore(t)
	service := NewService(accounts, store)

	account := cachedAccount("alice")
	account.User.PasswordRef = "checkin/old"
	config := newMemoryConfig(account)

	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(config, nil).Once()
	store.EXPECT().Put(mockAnyContext(), "checkin/new", "s3cret").Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "checkin/old").Return(nil).Once()

	err := service.SetPassword(context.Background(), "alice", "checkin/new", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "checkin/new", config.UserInfo().PasswordRef)
}

func TestServiceSetPasswordRollsBackSecretWhenSaveFails(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	store := mocks.NewMockSecretStore(t)
	service := NewService(accounts, store)

	config := newMemoryConfig(cachedAccount("alice"))
	config.saveUserErrs = []error{errors.New("read-only file system")}

	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(config, nil).Once()
	store.EXPECT().Put(mockAnyContext(), "checkin/accounts/alice/password", "s3cret").Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "checkin/accounts/alice/password").Return(nil).Once()

	err := service.SetPassword(context.Background(), "alice", "", "s3cret")
	require.Error(t, err)
	assert.ErrorContains(t, err, "save account password ref")
	assert.Equal(t, "T1", config.UserInfo().Token)
	assert.Empty(t, config.UserInfo().PasswordRef)
}

func TestServiceSetPasswordReportsRollbackFailure(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	store := mocks.NewMockSecretStore(t)
	service := NewService(accounts, store)

	config := newMemoryConfig(cachedAccount("alice"))
	config.saveUserErrs = []error{errors.New("read-only file system")}

	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(config, nil).Once()
	store.EXPECT().Put(mockAnyContext(), "checkin/accounts/alice/password", "s3cret").Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "checkin/accounts/alice/password").Return(errors.New("pass locked")).Once()

	err := service.SetPassword(context.Background(), "alice", "", "s3cret")
	require.Error(t, err)
	assert.ErrorContains(t, err, "rollback stored secret")
	assert.ErrorContains(t, err, "read-only file system")
	assert.ErrorContains(t, err, "pass locked")
}

func TestServiceSetPasswordRejectsEmptyPassword(t *testing.T) {
	t.Parallel()

	service := NewService(mocks.NewMockAccountSource(t), mocks.NewMockSecretStore(t))

	err := service.SetPassword(context.Background(), "alice", "", "  ")
	require.Error(t, err)
}

func TestServiceSetPasswordUnknownAccount(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	service := NewService(accounts, mocks.NewMockSecretStore(t))

	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("zed")).Return(nil, domain.ErrAccountNotFound).Once()

	err := service.SetPassword(context.Background(), "zed", "", "s3cret")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestServiceRemovePassword(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	store := mocks.NewMockSecretStore(t)
	service := NewService(accounts, store)

	account := cachedAccount("alice")
	account.User.PasswordRef = "checkin/accounts/alice/password"
	config := newMemoryConfig(account)

	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(config, nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "checkin/accounts/alice/password").Return(nil).Once()

	require.NoError(t, service.RemovePassword(context.Background(), "alice"))
	assert.Empty(t, config.UserInfo().PasswordRef)
}

func TestServiceRemovePasswordRestoresRefWhenDeleteFails(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	store := mocks.NewMockSecretStore(t)
	service := NewService(accounts, store)

	account := cachedAccount("alice")
	account.User.PasswordRef = "checkin/accounts/alice/password"
	config := newMemoryConfig(account)

	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(config, nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "checkin/accounts/alice/password").Return(errors.New("pass locked")).Once()

	err := service.RemovePassword(context.Background(), "alice")
	require.Error(t, err)
	assert.ErrorContains(t, err, "delete password secret")
	assert.Equal(t, "checkin/accounts/alice/password", config.UserInfo().PasswordRef)
	assert.Len(t, config.userSaves, 2)
}

func TestServiceRemovePasswordWithoutRefIsNoop(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	service := NewService(accounts, mocks.NewMockSecretStore(t))

	config := newMemoryConfig(cachedAccount("alice"))
	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(config, nil).Once()

	require.NoError(t, service.RemovePassword(context.Background(), "alice"))
	assert.Empty(t, config.userSaves)
}

func TestServiceListAccounts(t *testing.T) {
	t.Parallel()

	accounts := mocks.NewMockAccountSource(t)
	service := NewService(accounts, mocks.NewMockSecretStore(t))

	alice := newMemoryConfig(withPush(cachedAccount("alice"), "SCT123", "Server"))
	fresh := cachedAccount("bob")
	fresh.User = domain.UserInfo{Phone: "13900000000"}
	fresh.Plan = domain.PlanInfo{}
	bob := newMemoryConfig(fresh)

	accounts.EXPECT().List(mockAnyContext()).Return([]domain.AccountID{"alice", "bob", "broken"}, nil).Once()
	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(alice, nil).Once()
	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("bob")).Return(bob, nil).Once()
	accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("broken")).Return(nil, errors.New("decode account file broken")).Once()

	summaries, err := service.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, AccountSummary{
		ID:          "alice",
		DisplayName: "alice",
		Plan:        domain.PlanInfo{PlanID: "P1", PlanName: "Summer internship"},
		HasToken:    true,
		PushType:    "Server",
	}, summaries[0])

	assert.Equal(t, "13900000000", summaries[1].DisplayName)
	assert.False(t, summaries[1].HasToken)
	assert.Empty(t, summaries[1].PushType)

	assert.Equal(t, domain.AccountID("broken"), summaries[2].ID)
	assert.ErrorContains(t, summaries[2].Err, "decode account file broken")
}
