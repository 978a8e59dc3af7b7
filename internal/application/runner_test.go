package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports/mocks"
)

type runnerFixture struct {
	accounts *mocks.MockAccountSource
	session  *mocks.MockSessionClient
	notifier *mocks.MockNotifier
	runner   *Runner
}

func newRunnerFixture(t *testing.T) runnerFixture {
	t.Helper()

	fixture := runnerFixture{
		accounts: mocks.NewMockAccountSource(t),
		session:  mocks.NewMockSessionClient(t),
		notifier: mocks.NewMockNotifier(t),
	}
	checkIn := NewCheckInService(fixture.session, clockwork.NewFakeClockAt(checkInNow), nil)
	fixture.runner = NewRunner(fixture.accounts, checkIn, fixture.notifier, nil)
	return fixture
}

func (f runnerFixture) expectAccounts(configs ...*memoryConfig) {
	ids := make([]domain.AccountID, 0, len(configs))
	for _, config := range configs {
		ids = append(ids, config.ID())
		f.accounts.EXPECT().GetByID(mockAnyContext(), config.ID()).Return(config, nil).Maybe()
	}
	f.accounts.EXPECT().List(mockAnyContext()).Return(ids, nil).Once()
}

func (f runnerFixture) expectSuccessfulCheckIn(config *memoryConfig) {
	f.session.EXPECT().GetCheckInState(mockAnyContext(), config).Return(domain.CheckInRecord{Type: domain.CheckInStart}, nil).Once()
	f.session.EXPECT().Submit(mockAnyContext(), config, domain.CheckInRecord{Type: domain.CheckInEnd}).Return(nil).Once()
}

func withPush(account domain.Account, key, pushType string) domain.Account {
	account.Settings.PushKey = key
	account.Settings.PushType = pushType
	return account
}

func TestRunnerDispatchesReportWhenPushIsConfigured(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	config := newMemoryConfig(withPush(cachedAccount("alice"), "SCT123", "Server"))
	f.expectAccounts(config)
	f.expectSuccessfulCheckIn(config)

	f.notifier.EXPECT().Push(mockAnyContext(), mock.MatchedBy(func(message domain.Message) bool {
		return message.Title == domain.SuccessTitle
	}), domain.PushChannel{Key: "SCT123", Type: "Server"}).Return(nil).Once()

	outcomes, err := f.runner.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	assert.Equal(t, domain.AccountID("alice"), outcomes[0].AccountID)
	assert.True(t, outcomes[0].Report.Succeeded())
	assert.True(t, outcomes[0].Notified)
	assert.NoError(t, outcomes[0].NotifyErr)
}

func TestRunnerSkipsNotificationUnlessKeyAndTypeAreSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		pushType string
	}{
		{name: "nothing configured"},
		{name: "key only", key: "SCT123"},
		{name: "type only", pushType: "Server"},
		{name: "blank type", key: "SCT123", pushType: "   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newRunnerFixture(t)
			config := newMemoryConfig(withPush(cachedAccount("alice"), tc.key, tc.pushType))
			f.expectAccounts(config)
			f.expectSuccessfulCheckIn(config)

			outcomes, err := f.runner.Run(context.Background(), RunOptions{})
			require.NoError(t, err)
			require.Len(t, outcomes, 1)
			assert.False(t, outcomes[0].Notified)
			f.notifier.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRunnerNotificationFailureDoesNotChangeOutcome(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	first := newMemoryConfig(withPush(cachedAccount("alice"), "SCT123", "Server"))
	second := newMemoryConfig(cachedAccount("bob"))
	f.expectAccounts(first, second)
	f.expectSuccessfulCheckIn(first)
	f.expectSuccessfulCheckIn(second)

	pushErr := errors.New("push via Server: channel quota exceeded")
	f.notifier.EXPECT().Push(mockAnyContext(), mock.Anything, mock.Anything).Return(pushErr).Once()

	outcomes, err := f.runner.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.True(t, outcomes[0].Report.Succeeded())
	assert.False(t, outcomes[0].Notified)
	assert.ErrorIs(t, outcomes[0].NotifyErr, pushErr)
	assert.True(t, outcomes[1].Report.Succeeded())
}

func TestRunnerRecoversFromPanickingNotifier(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	first := newMemoryConfig(withPush(cachedAccount("a"), "SCT123", "Server"))
	second := newMemoryConfig(withPush(cachedAccount("b"), "bob-key", "Bark"))
	f.expectAccounts(first, second)
	f.expectSuccessfulCheckIn(first)
	f.expectSuccessfulCheckIn(second)

	f.notifier.EXPECT().Push(mockAnyContext(), mock.Anything, domain.PushChannel{Key: "SCT123", Type: "Server"}).
		RunAndReturn(func(context.Context, domain.Message, domain.PushChannel) error {
			panic("nil map in channel registry")
		}).Once()
	f.notifier.EXPECT().Push(mockAnyContext(), mock.Anything, domain.PushChannel{Key: "bob-key", Type: "Bark"}).
		Return(nil).Once()

	var outcomes []Outcome
	require.NotPanics(t, func() {
		var err error
		outcomes, err = f.runner.Run(context.Background(), RunOptions{})
		require.NoError(t, err)
	})
	require.Len(t, outcomes, 2)

	assert.True(t, outcomes[0].Report.Succeeded())
	assert.False(t, outcomes[0].Notified)
	require.ErrorIs(t, outcomes[0].NotifyErr, domain.ErrUnexpected)
	assert.Contains(t, outcomes[0].NotifyErr.Error(), "nil map in channel registry")

	assert.Equal(t, domain.AccountID("b"), outcomes[1].AccountID)
	assert.True(t, outcomes[1].Report.Succeeded())
	assert.True(t, outcomes[1].Notified)
}

func TestRunnerContinuesPastAmbiguousAccount(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	bob := newMemoryConfig(cachedAccount("bob"))

	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.AccountID{"alice", "bob"}, nil).Once()
	f.accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).
		Return(nil, errors.New("account alice (alice.json, alice.yaml): account is defined by more than one file")).Once()
	f.accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("bob")).Return(bob, nil).Once()
	f.expectSuccessfulCheckIn(bob)

	outcomes, err := f.runner.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.False(t, outcomes[0].Report.Succeeded())
	assert.Contains(t, outcomes[0].Report.Body, "more than one file")
	assert.False(t, outcomes[0].Notified)
	assert.True(t, outcomes[1].Report.Succeeded())
	f.notifier.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunnerProcessesAccountsIndependently(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)

	failing := cachedAccount("alice")
	failing.User.Token = ""
	first := newMemoryConfig(withPush(failing, "SCT123", "Server"))
	second := newMemoryConfig(withPush(cachedAccount("bob"), "bob-key", "Bark"))

	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.AccountID{"alice", "broken", "bob"}, nil).Once()
	f.accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(first, nil).Once()
	f.accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("broken")).
		Return(nil, errors.New("decode account file broken: invalid character")).Once()
	f.accounts.EXPECT().GetByID(mockAnyContext(), domain.AccountID("bob")).Return(second, nil).Once()

	f.session.EXPECT().Login(mockAnyContext(), first).
		Return(domain.Session{}, fmt.Errorf("%w: account locked", domain.ErrAuthentication)).Once()
	f.expectSuccessfulCheckIn(second)

	var pushed []domain.Message
	f.notifier.EXPECT().Push(mockAnyContext(), mock.Anything, mock.Anything).
		Run(func(_ context.Context, message domain.Message, _ domain.PushChannel) {
			pushed = append(pushed, message)
		}).Return(nil).Twice()

	outcomes, err := f.runner.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, domain.KindAuthentication, domain.KindOf(outcomes[0].Report.Err))
	assert.Contains(t, outcomes[1].Report.Body, "decode account file broken")
	assert.False(t, outcomes[1].Notified)
	assert.True(t, outcomes[2].Report.Succeeded())

	require.Len(t, pushed, 2)
	assert.Equal(t, domain.FailureTitle, pushed[0].Title)
	assert.Equal(t, domain.SuccessTitle, pushed[1].Title)
}

func TestRunnerWithNoAccounts(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	f.accounts.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()

	outcomes, err := f.runner.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestRunnerFailsWhenAccountsCannotBeListed(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	f.accounts.EXPECT().List(mockAnyContext()).Return(nil, errors.New("permission denied")).Once()

	_, err := f.runner.Run(context.Background(), RunOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "list accounts")
}

func TestRunnerSelectsOneAccount(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	alice := newMemoryConfig(cachedAccount("alice"))
	bob := newMemoryConfig(cachedAccount("bob"))
	f.expectAccounts(alice, bob)
	f.expectSuccessfulCheckIn(bob)

	var seen []domain.AccountID
	outcomes, err := f.runner.Run(context.Background(), RunOptions{
		Account: "bob",
		OnAccount: func(id domain.AccountID, index, total int) {
			assert.Equal(t, 0, index)
			assert.Equal(t, 1, total)
			seen = append(seen, id)
		},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.AccountID("bob"), outcomes[0].AccountID)
	assert.Equal(t, []domain.AccountID{"bob"}, seen)
}

func TestRunnerRejectsUnknownAccount(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.AccountID{"alice"}, nil).Once()

	_, err := f.runner.Run(context.Background(), RunOptions{Account: "zed"})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRunnerStopsWhenContextIsCanceled(t *testing.T) {
	t.Parallel()

	f := newRunnerFixture(t)
	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.AccountID{"alice"}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := f.runner.Run(ctx, RunOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
}
