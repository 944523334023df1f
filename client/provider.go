package client

import "context"

// Provider is the data-access contract behind the app state. Two
// implementations exist: the HTTP transport against the REST API and
// an in-memory provider with seed data for offline use. Both must
// behave identically from the caller's point of view, including the
// bounded-retry shape on reads.
type Provider interface {
	GetUnits(ctx context.Context) ([]Unit, error)
	GetUsers(ctx context.Context) ([]User, error)

	GetLeads(ctx context.Context, unitID string) ([]Lead, error)
	CreateLead(ctx context.Context, lead Lead) (Lead, error)
	UpdateLead(ctx context.Context, lead Lead) (Lead, error)
	DeleteLead(ctx context.Context, id string) error

	GetStudents(ctx context.Context, unitID string) ([]Student, error)
	CreateStudent(ctx context.Context, student Student) (Student, error)
	DeleteStudent(ctx context.Context, id string) error

	GetPayments(ctx context.Context, unitID string) ([]Payment, error)

	GetConfig(ctx context.Context) (SystemConfig, error)
	SaveConfig(ctx context.Context, cfg SystemConfig) error
}
