package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// configStoreKey is where the offline provider persists the only piece
// of state that must survive restarts.
const configStoreKey = "playjazz_config"

// MemoryProvider serves the Provider contract from seed data without a
// network. Collections live in memory; only SystemConfig is persisted,
// through the key/value store. Reads run through the same retry wrapper
// as the HTTP transport so the two providers stay interchangeable.
type MemoryProvider struct {
	mu    sync.Mutex
	store KeyValueStore

	units    []Unit
	users    []User
	leads    []Lead
	students []Student
	payments []Payment

	nextID int
}

func NewMemoryProvider(store KeyValueStore) *MemoryProvider {
	dueSoon := time.Now().AddDate(0, 0, 5).Format("2006-01-02")

	return &MemoryProvider{
		store: store,
		units: []Unit{
			{ID: "1", Name: "PlayJazz Centro"},
			{ID: "2", Name: "PlayJazz Zona Sul"},
		},
		users: []User{
			{ID: "1", Name: "Admin Principal", Email: "admin@playjazz.com", Role: "admin"},
			{ID: "2", Name: "Gerente Centro", Email: "gerente.centro@playjazz.com", Role: "manager", UnitID: "1"},
			{ID: "3", Name: "Secretária Sul", Email: "sec.sul@playjazz.com", Role: "manager", UnitID: "2"},
		},
		leads: []Lead{
			{ID: "1", UnitID: "1", Name: "Ana Silva", Phone: "5511999999999", Email: "ana@test.com", Instrument: "Piano", Source: "Instagram", Status: LeadNew, CreatedAt: "2023-10-01"},
			{ID: "2", UnitID: "1", Name: "Carlos Souza", Phone: "5511988888888", Email: "carlos@test.com", Instrument: "Guitarra", Source: "Google", Status: LeadContacted, CreatedAt: "2023-10-02"},
			{ID: "3", UnitID: "2", Name: "Beatriz Lima", Phone: "5521977777777", Email: "bia@test.com", Instrument: "Canto", Source: "Indicação", Status: LeadTrial, CreatedAt: "2023-10-03"},
			{ID: "4", UnitID: "1", Name: "João Paulo", Phone: "5511966666666", Email: "jp@test.com", Instrument: "Bateria", Source: "Instagram", Status: LeadNegotiation, CreatedAt: "2023-10-05"},
			{ID: "5", UnitID: "2", Name: "Mariana Costa", Phone: "5521955555555", Email: "mari@test.com", Instrument: "Saxofone", Source: "Google", Status: LeadNew, CreatedAt: "2023-10-06"},
		},
		students: []Student{
			{
				ID: "1", UnitID: "1", Name: "Pedro Alcantara", Phone: "5511944444444", Email: "pedro@test.com",
				BirthDate: "2010-05-15", ResponsibleName: "Marcos Alcantara", Course: "Piano Clássico", Status: "Active",
				Timeline: []TimelineLog{
					{ID: "1", Date: "2023-09-01", Type: "Sistema", Message: "Matrícula realizada"},
					{ID: "2", Date: "2023-10-05", Type: "WhatsApp", Message: "Lembrete de aula enviado"},
				},
			},
			{
				ID: "2", UnitID: "2", Name: "Julia Roberts", Phone: "5521933333333", Email: "julia@test.com",
				BirthDate: "1995-12-20", Course: "Canto Popular", Status: "Active",
				Timeline: []TimelineLog{
					{ID: "3", Date: "2023-08-15", Type: "Sistema", Message: "Lead convertido em aluno"},
				},
			},
		},
		payments: []Payment{
			{ID: "1", UnitID: "1", StudentID: "1", Amount: 350.00, DueDate: "2023-10-10", Status: "Pago", Description: "Mensalidade Outubro"},
			{ID: "2", UnitID: "1", StudentID: "1", Amount: 350.00, DueDate: "2023-11-10", Status: "Pendente", Description: "Mensalidade Novembro"},
			{ID: "3", UnitID: "2", StudentID: "2", Amount: 400.00, DueDate: dueSoon, Status: "Pendente", Description: "Mensalidade Novembro"},
			{ID: "4", UnitID: "1", StudentID: "1", Amount: 350.00, DueDate: "2023-09-10", Status: "Atrasado", Description: "Mensalidade Setembro"},
		},
		nextID: 100,
	}
}

func (m *MemoryProvider) assignID() string {
	id := strconv.Itoa(m.nextID)
	m.nextID++
	return id
}

// read mimics the HTTP read path: same retry wrapper, zero failures.
func read[T any](ctx context.Context, fetch func() T) (T, error) {
	var out T
	err := withRetry(ctx, defaultReadAttempts, defaultRetryDelay, func() error {
		out = fetch()
		return nil
	})
	return out, err
}

func (m *MemoryProvider) GetUnits(ctx context.Context) ([]Unit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return read(ctx, func() []Unit { return append([]Unit(nil), m.units...) })
}

func (m *MemoryProvider) GetUsers(ctx context.Context) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return read(ctx, func() []User { return append([]User(nil), m.users...) })
}

func (m *MemoryProvider) GetLeads(ctx context.Context, unitID string) ([]Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return read(ctx, func() []Lead {
		all := append([]Lead(nil), m.leads...)
		if unitID == "" {
			return all
		}
		return FilterByUnit(all, unitID)
	})
}

func (m *MemoryProvider) CreateLead(ctx context.Context, lead Lead) (Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lead.ID = m.assignID()
	if lead.Status == "" {
		lead.Status = LeadNew
	}
	if lead.CreatedAt == "" {
		lead.CreatedAt = time.Now().Format("2006-01-02")
	}
	m.leads = append(m.leads, lead)
	return lead, nil
}

func (m *MemoryProvider) UpdateLead(ctx context.Context, lead Lead) (Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.leads {
		if m.leads[i].ID == lead.ID {
			m.leads[i] = lead
			return lead, nil
		}
	}
	return Lead{}, fmt.Errorf("lead %s not found", lead.ID)
}

func (m *MemoryProvider) DeleteLead(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.leads {
		if m.leads[i].ID == id {
			m.leads = append(m.leads[:i], m.leads[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("lead %s not found", id)
}

func (m *MemoryProvider) GetStudents(ctx context.Context, unitID string) ([]Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return read(ctx, func() []Student {
		all := append([]Student(nil), m.students...)
		if unitID == "" {
			return all
		}
		return FilterByUnit(all, unitID)
	})
}

func (m *MemoryProvider) CreateStudent(ctx context.Context, student Student) (Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	student.ID = m.assignID()
	if student.Status == "" {
		student.Status = "Active"
	}
	student.Timeline = []TimelineLog{}
	m.students = append(m.students, student)
	return student, nil
}

// DeleteStudent removes the student and, with it, every timeline entry
// it owns: no orphan logs stay queryable.
func (m *MemoryProvider) DeleteStudent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.students {
		if m.students[i].ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("student %s not found", id)
}

func (m *MemoryProvider) GetPayments(ctx context.Context, unitID string) ([]Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return read(ctx, func() []Payment {
		all := append([]Payment(nil), m.payments...)
		if unitID == "" {
			return all
		}
		return FilterByUnit(all, unitID)
	})
}

func (m *MemoryProvider) GetConfig(ctx context.Context) (SystemConfig, error) {
	if m.store == nil {
		return DefaultConfig(), nil
	}

	data, ok, err := m.store.Get(configStoreKey)
	if err != nil {
		return SystemConfig{}, err
	}
	if !ok {
		return DefaultConfig(), nil
	}

	var cfg SystemConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SystemConfig{}, err
	}
	return cfg, nil
}

func (m *MemoryProvider) SaveConfig(ctx context.Context, cfg SystemConfig) error {
	if m.store == nil {
		return nil
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return m.store.Set(configStoreKey, data)
}
