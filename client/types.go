// Package client is the Go SDK for the PlayJazz CRM API. It mirrors
// what the web app holds in memory: every collection loaded up front,
// unit-scoped views derived on demand, and mutations applied locally
// before the server confirms them.
package client

import "strings"

// Client-side shapes use string identifiers and display-label enums;
// the transport converts to the store's integer ids and compact codes.

type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`             // 'admin' or 'manager'
	UnitID string `json:"unitId,omitempty"` // empty for admins
}

type Lead struct {
	ID         string `json:"id"`
	UnitID     string `json:"unitId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Instrument string `json:"instrument"`
	Source     string `json:"source"`
	Status     string `json:"status"` // display label, e.g. "Novo Lead"
	CreatedAt  string `json:"createdAt"`
}

type TimelineLog struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Student struct {
	ID              string        `json:"id"`
	UnitID          string        `json:"unitId"`
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	BirthDate       string        `json:"birthDate"`
	ResponsibleName string        `json:"responsibleName,omitempty"`
	Course          string        `json:"course"`
	Status          string        `json:"status"` // Active, Inactive
	Timeline        []TimelineLog `json:"timeline"`
}

type Payment struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	UnitID      string  `json:"unitId"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"` // display label, e.g. "Pendente"
	Description string  `json:"description"`
}

type WhatsappConfig struct {
	Provider      string `json:"provider"`
	BaseURL       string `json:"baseUrl,omitempty"`
	APIKey        string `json:"apiKey,omitempty"`
	PhoneNumberID string `json:"phoneNumberId,omitempty"`
}

type GeminiConfig struct {
	APIKey string `json:"apiKey"`
}

type SystemConfig struct {
	Whatsapp          WhatsappConfig `json:"whatsapp"`
	Gemini            GeminiConfig   `json:"gemini"`
	NotificationEmail string         `json:"notificationEmail,omitempty"`
}

// DefaultConfig is what a fresh installation starts from.
func DefaultConfig() SystemConfig {
	return SystemConfig{
		Whatsapp: WhatsappConfig{Provider: "gateway"},
	}
}

const localIDPrefix = "local-"

// IsLocalID reports whether an identifier is a client-generated
// placeholder awaiting server reconciliation.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}

func (l Lead) TenantID() string    { return l.UnitID }
func (s Student) TenantID() string { return s.UnitID }
func (p Payment) TenantID() string { return p.UnitID }
