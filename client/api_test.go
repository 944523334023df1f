package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(url string) *HTTPProvider {
	p := NewHTTPProvider(url)
	p.delay = time.Millisecond
	return p
}

func TestGetLeadsMapsWireShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leads", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("unitId"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": 7, "unitId": 1, "name": "Ana Silva", "phone": "5511999999999",
			"email": "ana@test.com", "instrument": "Piano", "source": "Instagram",
			"status": "NEGOTIATION", "createdAt": "2023-10-05T12:30:00Z"
		}]`))
	}))
	defer srv.Close()

	leads, err := testProvider(srv.URL).GetLeads(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, leads, 1)

	assert.Equal(t, "7", leads[0].ID)
	assert.Equal(t, "1", leads[0].UnitID)
	assert.Equal(t, "Negociação", leads[0].Status)
	assert.Equal(t, "2023-10-05", leads[0].CreatedAt)
}

func TestGetPaymentsParsesDecimalText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": 3, "studentId": 2, "unitId": 1, "amount": "350.00",
			"dueDate": "2023-11-10", "status": "PENDING", "description": "Mensalidade"
		}]`))
	}))
	defer srv.Close()

	payments, err := testProvider(srv.URL).GetPayments(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, payments, 1)

	assert.Equal(t, 350.00, payments[0].Amount)
	assert.Equal(t, "Pendente", payments[0].Status)
	assert.Equal(t, "2", payments[0].StudentID)
}

func TestCreateLeadSendsCodesAndAdoptsServerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		// Labels and string ids never cross the boundary.
		assert.Equal(t, "NEW", payload["status"])
		assert.Equal(t, float64(1), payload["unitId"])
		assert.NotContains(t, payload, "id")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "unitId": 1, "name": "Novo", "status": "NEW"}`))
	}))
	defer srv.Close()

	created, err := testProvider(srv.URL).CreateLead(context.Background(), Lead{
		ID: newLocalID(), UnitID: "1", Name: "Novo", Phone: "5511911111111",
		Source: "Google", Status: LeadNew,
	})
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID)
}

func TestReadRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := testProvider(srv.URL).GetUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestReadRetriesExhaust(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testProvider(srv.URL).GetUnits(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(defaultReadAttempts), calls.Load())
}

func TestReadDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testProvider(srv.URL).GetLeads(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWritesAreNeverRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := testProvider(srv.URL)
	_, err := p.CreateLead(context.Background(), Lead{UnitID: "1", Name: "x", Phone: "y"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	require.Error(t, p.DeleteLead(context.Background(), "1"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestConfigRoundTripsNestedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var doc SystemConfig
			require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
			assert.Equal(t, "cloud_api", doc.Whatsapp.Provider)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"whatsapp":{"provider":"gateway","baseUrl":"https://gw"},"gemini":{"apiKey":"k"},"notificationEmail":"x@y.z"}`))
	}))
	defer srv.Close()

	p := testProvider(srv.URL)
	cfg, err := p.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://gw", cfg.Whatsapp.BaseURL)
	assert.Equal(t, "k", cfg.Gemini.APIKey)

	cfg.Whatsapp.Provider = "cloud_api"
	require.NoError(t, p.SaveConfig(context.Background(), cfg))
}
