package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"playjazz-backend/models"
)

// HTTPProvider talks to the REST API, translating between the store's
// wire shapes (integer ids, compact status codes, fixed-point decimal
// text) and the client shapes (string ids, display labels, float64).
type HTTPProvider struct {
	baseURL string
	httpc   *http.Client

	attempts int
	delay    time.Duration
}

func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL:  baseURL,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		attempts: defaultReadAttempts,
		delay:    defaultRetryDelay,
	}
}

func (p *HTTPProvider) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &httpStatusError{status: resp.StatusCode, path: path}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getJSON is the read path: bounded retry with a fixed delay.
func (p *HTTPProvider) getJSON(ctx context.Context, path string, out any) error {
	return withRetry(ctx, p.attempts, p.delay, func() error {
		return p.doJSON(ctx, http.MethodGet, path, nil, out)
	})
}

func collectionPath(base, unitID string) string {
	if unitID == "" {
		return base
	}
	return base + "?unitId=" + unitID
}

// Wire mapping helpers

func idToString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func idFromString(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q: %w", id, err)
	}
	return uint(n), nil
}

func dateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func leadFromWire(row models.Lead) Lead {
	return Lead{
		ID:         idToString(row.ID),
		UnitID:     idToString(row.UnitID),
		Name:       row.Name,
		Phone:      row.Phone,
		Email:      row.Email,
		Instrument: row.Instrument,
		Source:     row.Source,
		Status:     models.LeadStatusLabel(row.Status),
		CreatedAt:  dateString(row.CreatedAt),
	}
}

type leadPayload struct {
	UnitID     uint   `json:"unitId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Instrument string `json:"instrument"`
	Source     string `json:"source"`
	Status     string `json:"status,omitempty"`
}

func leadToWire(lead Lead) (leadPayload, error) {
	unitID, err := idFromString(lead.UnitID)
	if err != nil {
		return leadPayload{}, err
	}
	return leadPayload{
		UnitID:     unitID,
		Name:       lead.Name,
		Phone:      lead.Phone,
		Email:      lead.Email,
		Instrument: lead.Instrument,
		Source:     lead.Source,
		Status:     models.LeadStatusCode(lead.Status),
	}, nil
}

func studentFromWire(row models.Student) Student {
	timeline := make([]TimelineLog, 0, len(row.Timeline))
	for _, entry := range row.Timeline {
		timeline = append(timeline, TimelineLog{
			ID:      idToString(entry.ID),
			Date:    dateString(entry.Date),
			Type:    entry.Type,
			Message: entry.Message,
		})
	}
	return Student{
		ID:              idToString(row.ID),
		UnitID:          idToString(row.UnitID),
		Name:            row.Name,
		Phone:           row.Phone,
		Email:           row.Email,
		BirthDate:       row.BirthDate,
		ResponsibleName: row.ResponsibleName,
		Course:          row.Course,
		Status:          row.Status,
		Timeline:        timeline,
	}
}

type studentPayload struct {
	UnitID          uint   `json:"unitId"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	BirthDate       string `json:"birthDate"`
	ResponsibleName string `json:"responsibleName,omitempty"`
	Course          string `json:"course"`
	Status          string `json:"status,omitempty"`
}

func studentToWire(student Student) (studentPayload, error) {
	unitID, err := idFromString(student.UnitID)
	if err != nil {
		return studentPayload{}, err
	}
	return studentPayload{
		UnitID:          unitID,
		Name:            student.Name,
		Phone:           student.Phone,
		Email:           student.Email,
		BirthDate:       student.BirthDate,
		ResponsibleName: student.ResponsibleName,
		Course:          student.Course,
		Status:          student.Status,
	}, nil
}

func paymentFromWire(row models.Payment) Payment {
	return Payment{
		ID:          idToString(row.ID),
		StudentID:   idToString(row.StudentID),
		UnitID:      idToString(row.UnitID),
		Amount:      row.Amount.InexactFloat64(),
		DueDate:     row.DueDate,
		Status:      models.PaymentStatusLabel(row.Status),
		Description: row.Description,
	}
}

func userFromWire(row models.User) User {
	unitID := ""
	if row.UnitID != nil {
		unitID = idToString(*row.UnitID)
	}
	return User{
		ID:     idToString(row.ID),
		Name:   row.Name,
		Email:  row.Email,
		Role:   row.Role,
		UnitID: unitID,
	}
}

// Provider implementation

func (p *HTTPProvider) GetUnits(ctx context.Context) ([]Unit, error) {
	var rows []models.Unit
	if err := p.getJSON(ctx, "/api/units", &rows); err != nil {
		return nil, err
	}
	units := make([]Unit, 0, len(rows))
	for _, row := range rows {
		units = append(units, Unit{ID: idToString(row.ID), Name: row.Name})
	}
	return units, nil
}

func (p *HTTPProvider) GetUsers(ctx context.Context) ([]User, error) {
	var rows []models.User
	if err := p.getJSON(ctx, "/api/users", &rows); err != nil {
		return nil, err
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userFromWire(row))
	}
	return users, nil
}

func (p *HTTPProvider) GetLeads(ctx context.Context, unitID string) ([]Lead, error) {
	var rows []models.Lead
	if err := p.getJSON(ctx, collectionPath("/api/leads", unitID), &rows); err != nil {
		return nil, err
	}
	leads := make([]Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, leadFromWire(row))
	}
	return leads, nil
}

func (p *HTTPProvider) CreateLead(ctx context.Context, lead Lead) (Lead, error) {
	payload, err := leadToWire(lead)
	if err != nil {
		return Lead{}, err
	}
	var row models.Lead
	if err := p.doJSON(ctx, http.MethodPost, "/api/leads", payload, &row); err != nil {
		return Lead{}, err
	}
	return leadFromWire(row), nil
}

func (p *HTTPProvider) UpdateLead(ctx context.Context, lead Lead) (Lead, error) {
	payload, err := leadToWire(lead)
	if err != nil {
		return Lead{}, err
	}
	var row models.Lead
	if err := p.doJSON(ctx, http.MethodPut, "/api/leads/"+lead.ID, payload, &row); err != nil {
		return Lead{}, err
	}
	return leadFromWire(row), nil
}

func (p *HTTPProvider) DeleteLead(ctx context.Context, id string) error {
	return p.doJSON(ctx, http.MethodDelete, "/api/leads/"+id, nil, nil)
}

func (p *HTTPProvider) GetStudents(ctx context.Context, unitID string) ([]Student, error) {
	var rows []models.Student
	if err := p.getJSON(ctx, collectionPath("/api/students", unitID), &rows); err != nil {
		return nil, err
	}
	students := make([]Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, studentFromWire(row))
	}
	return students, nil
}

func (p *HTTPProvider) CreateStudent(ctx context.Context, student Student) (Student, error) {
	payload, err := studentToWire(student)
	if err != nil {
		return Student{}, err
	}
	var row models.Student
	if err := p.doJSON(ctx, http.MethodPost, "/api/students", payload, &row); err != nil {
		return Student{}, err
	}
	return studentFromWire(row), nil
}

func (p *HTTPProvider) DeleteStudent(ctx context.Context, id string) error {
	return p.doJSON(ctx, http.MethodDelete, "/api/students/"+id, nil, nil)
}

func (p *HTTPProvider) GetPayments(ctx context.Context, unitID string) ([]Payment, error) {
	var rows []models.Payment
	if err := p.getJSON(ctx, collectionPath("/api/payments", unitID), &rows); err != nil {
		return nil, err
	}
	payments := make([]Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, paymentFromWire(row))
	}
	return payments, nil
}

func (p *HTTPProvider) GetConfig(ctx context.Context) (SystemConfig, error) {
	var cfg SystemConfig
	if err := p.getJSON(ctx, "/api/config", &cfg); err != nil {
		return SystemConfig{}, err
	}
	return cfg, nil
}

func (p *HTTPProvider) SaveConfig(ctx context.Context, cfg SystemConfig) error {
	return p.doJSON(ctx, http.MethodPost, "/api/config", cfg, nil)
}
