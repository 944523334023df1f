package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AppState is the client's single source of truth between server round
// trips: every collection loaded once at startup, then patched locally
// before each write is confirmed. Mutations are optimistic and never
// rolled back — a failed write leaves the local state ahead of the
// store, and the returned error is the caller's cue to surface it.
//
// The original UI ran on one event loop; the mutex keeps the same
// single-writer discipline when callers are goroutines.
type AppState struct {
	mu       sync.Mutex
	provider Provider

	units    []Unit
	users    []User
	leads    []Lead
	students []Student
	payments []Payment
	config   SystemConfig

	currentUnit string
}

func NewAppState(provider Provider) *AppState {
	return &AppState{provider: provider}
}

// Load fetches every collection in parallel and fails as a whole if
// any fetch fails; the app blocks on this before rendering anything.
func (s *AppState) Load(ctx context.Context) error {
	var (
		units    []Unit
		users    []User
		leads    []Lead
		students []Student
		payments []Payment
		config   SystemConfig
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { units, err = s.provider.GetUnits(ctx); return })
	g.Go(func() (err error) { users, err = s.provider.GetUsers(ctx); return })
	g.Go(func() (err error) { leads, err = s.provider.GetLeads(ctx, ""); return })
	g.Go(func() (err error) { students, err = s.provider.GetStudents(ctx, ""); return })
	g.Go(func() (err error) { payments, err = s.provider.GetPayments(ctx, ""); return })
	g.Go(func() (err error) { config, err = s.provider.GetConfig(ctx); return })

	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = units
	s.users = users
	s.leads = leads
	s.students = students
	s.payments = payments
	s.config = config
	if s.currentUnit == "" && len(units) > 0 {
		s.currentUnit = units[0].ID
	}
	return nil
}

// SelectUnit switches the active tenant. Unknown ids are allowed and
// simply produce empty views.
func (s *AppState) SelectUnit(unitID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUnit = unitID
}

func (s *AppState) CurrentUnit() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUnit
}

func (s *AppState) Units() []Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Unit(nil), s.units...)
}

func (s *AppState) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]User(nil), s.users...)
}

func (s *AppState) Leads() []Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Lead(nil), s.leads...)
}

func (s *AppState) Students() []Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Student(nil), s.students...)
}

func (s *AppState) Payments() []Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Payment(nil), s.payments...)
}

func (s *AppState) Config() SystemConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// VisibleLeads applies the tenant projection for the active unit. The
// underlying collection stays unfiltered: this is a view, not an
// access-control boundary.
func (s *AppState) VisibleLeads() []Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterByUnit(s.leads, s.currentUnit)
}

func (s *AppState) VisibleStudents() []Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterByUnit(s.students, s.currentUnit)
}

func (s *AppState) VisiblePayments() []Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterByUnit(s.payments, s.currentUnit)
}

func newLocalID() string {
	return localIDPrefix + uuid.NewString()
}

// CreateLead appends an optimistic placeholder, writes through, and on
// success swaps the placeholder for the server-assigned record so
// exactly one copy remains under the permanent identity.
func (s *AppState) CreateLead(ctx context.Context, lead Lead) (Lead, error) {
	if lead.Name == "" || lead.Phone == "" {
		return Lead{}, fmt.Errorf("lead requires name and phone")
	}
	if lead.Status == "" {
		lead.Status = LeadNew
	}

	placeholder := newLocalID()
	lead.ID = placeholder

	s.mu.Lock()
	s.leads = append(s.leads, lead)
	s.mu.Unlock()

	created, err := s.provider.CreateLead(ctx, lead)
	if err != nil {
		return Lead{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == placeholder {
			s.leads[i] = created
			break
		}
	}
	return created, nil
}

// UpdateLead replaces the cached record by id, then writes through.
func (s *AppState) UpdateLead(ctx context.Context, lead Lead) error {
	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == lead.ID {
			s.leads[i] = lead
			break
		}
	}
	s.mu.Unlock()

	_, err := s.provider.UpdateLead(ctx, lead)
	return err
}

// DeleteLead removes the cached record by id, then writes through.
func (s *AppState) DeleteLead(ctx context.Context, id string) error {
	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return s.provider.DeleteLead(ctx, id)
}

// AdvanceLead moves a lead one step along the pipeline. Terminal
// leads are left untouched and moved reports whether anything changed.
func (s *AppState) AdvanceLead(ctx context.Context, id string) (lead Lead, moved bool, err error) {
	s.mu.Lock()
	var found *Lead
	for i := range s.leads {
		if s.leads[i].ID == id {
			found = &s.leads[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return Lead{}, false, fmt.Errorf("lead %s not found", id)
	}

	next, ok := NextStatus(found.Status)
	if !ok {
		lead = *found
		s.mu.Unlock()
		return lead, false, nil
	}

	found.Status = next
	lead = *found
	s.mu.Unlock()

	_, err = s.provider.UpdateLead(ctx, lead)
	return lead, true, err
}

// SetLeadStatus assigns any status directly; unlike AdvanceLead it is
// unconstrained, covering drag-and-drop between arbitrary columns.
func (s *AppState) SetLeadStatus(ctx context.Context, id, status string) (Lead, error) {
	s.mu.Lock()
	var lead Lead
	found := false
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Status = status
			lead = s.leads[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return Lead{}, fmt.Errorf("lead %s not found", id)
	}

	_, err := s.provider.UpdateLead(ctx, lead)
	return lead, err
}

// CreateStudent follows the same placeholder-then-reconcile protocol
// as CreateLead.
func (s *AppState) CreateStudent(ctx context.Context, student Student) (Student, error) {
	if student.Name == "" || student.Phone == "" {
		return Student{}, fmt.Errorf("student requires name and phone")
	}
	if student.Status == "" {
		student.Status = "Active"
	}

	placeholder := newLocalID()
	student.ID = placeholder

	s.mu.Lock()
	s.students = append(s.students, student)
	s.mu.Unlock()

	created, err := s.provider.CreateStudent(ctx, student)
	if err != nil {
		return Student{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].ID == placeholder {
			s.students[i] = created
			break
		}
	}
	return created, nil
}

// DeleteStudent removes the student locally (its timeline goes with
// it) and writes through; the server cascades the timeline rows.
func (s *AppState) DeleteStudent(ctx context.Context, id string) error {
	s.mu.Lock()
	for i := range s.students {
		if s.students[i].ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return s.provider.DeleteStudent(ctx, id)
}

// SaveConfig applies the new configuration locally, then writes it
// through.
func (s *AppState) SaveConfig(ctx context.Context, cfg SystemConfig) error {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()

	return s.provider.SaveConfig(ctx, cfg)
}
