package application

import (
	"context"
	"sync"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
	"github.com/stretchr/testify/mock"
)

var _ ports.ConfigStore = (*memoryConfig)(nil)

// memoryConfig is an in-memory account file.
type memoryConfig struct {
	mu      sync.Mutex
	account domain.Account

	saveUserErrs []error
	userSaves    []domain.UserInfo
	planSaves    []domain.PlanInfo
}

func newMemoryConfig(account domain.Account) *memoryConfig {
	return &memoryConfig{account: account}
}

func (m *memoryConfig) ID() domain.AccountID {
	return m.account.ID
}

func (m *memoryConfig) UserInfo() domain.UserInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.account.User
}

func (m *memoryConfig) PlanInfo() domain.PlanInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.account.Plan
}

func (m *memoryConfig) Config() domain.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.account.Settings
}

func (m *memoryConfig) SaveUserInfo(_ context.Context, info domain.UserInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.saveUserErrs) > 0 {
		err := m.saveUserErrs[0]
		m.saveUserErrs = m.saveUserErrs[1:]
		if err != nil {
			return err
		}
	}

	m.account.User = info
	m.userSaves = append(m.userSaves, info)
	return nil
}

func (m *memoryConfig) SavePlanInfo(_ context.Context, info domain.PlanInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.account.Plan = info
	m.planSaves = append(m.planSaves, info)
	return nil
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func cachedAccount(id domain.AccountID) domain.Account {
	return domain.Account{
		ID: id,
		User: domain.UserInfo{
			Phone:    "13800000000",
			Token:    "T1",
			NikeName: string(id),
		},
		Plan: domain.PlanInfo{PlanID: "P1", PlanName: "Summer internship"},
		Settings: domain.Settings{
			Address: "Gate-A",
		},
	}
}

func mockAnyConfig() interface{} {
	return mock.MatchedBy(func(ports.ConfigStore) bool { return true })
}

func mockAnyRecord() interface{} {
	return mock.MatchedBy(func(domain.CheckInRecord) bool { return true })
}
