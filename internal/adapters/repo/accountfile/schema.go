package accountfile

import "github.com/bnema/internship-checkin/internal/domain"

// fileSchema mirrors the account document. Keys are shared by every codec so a
// file can be converted between formats without renaming fields.
type fileSchema struct {
	Config   configSchema   `json:"config" toml:"config" yaml:"config"`
	UserInfo userInfoSchema `json:"userInfo" toml:"userInfo" yaml:"userInfo"`
	PlanInfo planInfoSchema `json:"planInfo" toml:"planInfo" yaml:"planInfo"`
}

type configSchema struct {
	User      credentialsSchema `json:"user" toml:"user" yaml:"user"`
	Address   string            `json:"address" toml:"address" yaml:"address"`
	Province  string            `json:"province,omitempty" toml:"province,omitempty" yaml:"province,omitempty"`
	City      string            `json:"city,omitempty" toml:"city,omitempty" yaml:"city,omitempty"`
	Latitude  string            `json:"latitude,omitempty" toml:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude string            `json:"longitude,omitempty" toml:"longitude,omitempty" yaml:"longitude,omitempty"`
	Device    string            `json:"device,omitempty" toml:"device,omitempty" yaml:"device,omitempty"`
	PushKey   string            `json:"pushKey,omitempty" toml:"pushKey,omitempty" yaml:"pushKey,omitempty"`
	PushType  string            `json:"pushType,omitempty" toml:"pushType,omitempty" yaml:"pushType,omitempty"`
}

type credentialsSchema struct {
	Phone       string `json:"phone" toml:"phone" yaml:"phone"`
	Password    string `json:"password,omitempty" toml:"password,omitempty" yaml:"password,omitempty"`
	PasswordRef string `json:"passwordRef,omitempty" toml:"passwordRef,omitempty" yaml:"passwordRef,omitempty"`
}

type userInfoSchema struct {
	Token    string `json:"token,omitempty" toml:"token,omitempty" yaml:"token,omitempty"`
	UserID   string `json:"userId,omitempty" toml:"userId,omitempty" yaml:"userId,omitempty"`
	RoleKey  string `json:"roleKey,omitempty" toml:"roleKey,omitempty" yaml:"roleKey,omitempty"`
	NikeName string `json:"nikeName,omitempty" toml:"nikeName,omitempty" yaml:"nikeName,omitempty"`
}

type planInfoSchema struct {
	PlanID   string `json:"planId,omitempty" toml:"planId,omitempty" yaml:"planId,omitempty"`
	PlanName string `json:"planName,omitempty" toml:"planName,omitempty" yaml:"planName,omitempty"`
}

func (s fileSchema) userInfo() domain.UserInfo {
	return domain.UserInfo{
		Phone:       s.Config.User.Phone,
		Password:    s.Config.User.Password,
		PasswordRef: s.Config.User.PasswordRef,
		Token:       s.UserInfo.Token,
		UserID:      s.UserInfo.UserID,
		RoleKey:     s.UserInfo.RoleKey,
		NikeName:    s.UserInfo.NikeName,
	}
}

func (s *fileSchema) setUserInfo(info domain.UserInfo) {
	s.Config.User = credentialsSchema{
		Phone:       info.Phone,
		Password:    info.Password,
		PasswordRef: info.PasswordRef,
	}
	s.UserInfo = userInfoSchema{
		Token:    info.Token,
		UserID:   info.UserID,
		RoleKey:  info.RoleKey,
		NikeName: info.NikeName,
	}
}

func (s fileSchema) planInfo() domain.PlanInfo {
	return domain.PlanInfo{
		PlanID:   s.PlanInfo.PlanID,
		PlanName: s.PlanInfo.PlanName,
	}
}

func (s *fileSchema) setPlanInfo(info domain.PlanInfo) {
	s.PlanInfo = planInfoSchema{
		PlanID:   info.PlanID,
		PlanName: info.PlanName,
	}
}

func (s fileSchema) settings() domain.Settings {
	return domain.Settings{
		Address:   s.Config.Address,
		Province:  s.Config.Province,
		City:      s.Config.City,
		Latitude:  s.Config.Latitude,
		Longitude: s.Config.Longitude,
		Device:    s.Config.Device,
		PushKey:   s.Config.PushKey,
		PushType:  s.Config.PushType,
	}
}
