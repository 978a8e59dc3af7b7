package domain

import "strings"

type AccountID string

// Account is the in-memory view of one account file.
type Account struct {
	ID       AccountID
	User     UserInfo
	Plan     PlanInfo
	Settings Settings
}

type UserInfo struct {
	Phone    string
	Password string
	// PasswordRef points to a secret-store entry and takes precedence over Password.
	PasswordRef string
	Token       string
	UserID      string
	RoleKey     string
	NikeName    string
}

func (u UserInfo) HasToken() bool {
	return strings.TrimSpace(u.Token) != ""
}

// DisplayName falls back to the phone number for accounts that never logged in.
func (u UserInfo) DisplayName() string {
	if name := strings.TrimSpace(u.NikeName); name != "" {
		return name
	}
	return u.Phone
}

type PlanInfo struct {
	PlanID   string
	PlanName string
}

func (p PlanInfo) HasPlan() bool {
	return strings.TrimSpace(p.PlanID) != ""
}

type Settings struct {
	Address   string
	Province  string
	City      string
	Latitude  string
	Longitude string
	Device    string
	PushKey   string
	PushType  string
}

// PushChannel returns the configured notification channel, if both halves are set.
func (s Settings) PushChannel() (PushChannel, bool) {
	channel := PushChannel{
		Key:  strings.TrimSpace(s.PushKey),
		Type: strings.TrimSpace(s.PushType),
	}
	if channel.Key == "" || channel.Type == "" {
		return PushChannel{}, false
	}

	return channel, true
}

// Session is the credential material returned by a successful login.
type Session struct {
	Token   string
	UserID  string
	RoleKey string
}
