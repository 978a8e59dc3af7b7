package remote

import "encoding/json"

const successCode = 200

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type loginRequest struct {
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	LoginType string `json:"loginType"`
	T         string `json:"t"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	RoleKey  string `json:"roleKey"`
	NikeName string `json:"nikeName"`
}

type planRequest struct {
	State string `json:"state"`
}

type planResponse struct {
	PlanID   string `json:"planId"`
	PlanName string `json:"planName"`
}

type stateRequest struct {
	PlanID    string `json:"planId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type stateResponse struct {
	Type       string `json:"type"`
	Address    string `json:"address"`
	CreateTime string `json:"createTime"`
}

type submitRequest struct {
	PlanID      string `json:"planId"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	Province    string `json:"province,omitempty"`
	City        string `json:"city,omitempty"`
	Latitude    string `json:"latitude,omitempty"`
	Longitude   string `json:"longitude,omitempty"`
	Device      string `json:"device"`
	Description string `json:"description"`
	T           string `json:"t"`
}
