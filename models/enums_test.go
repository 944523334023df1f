package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusRoundTrip(t *testing.T) {
	for _, code := range LeadStatusCodes() {
		label := LeadStatusLabel(code)
		assert.NotEqual(t, code, label, "every lead code should have a distinct label")
		assert.Equal(t, code, LeadStatusCode(label))
	}
	for label, code := range leadStatusCodes {
		assert.Equal(t, label, LeadStatusLabel(code))
	}
}

func TestPaymentStatusRoundTrip(t *testing.T) {
	for _, code := range PaymentStatusCodes() {
		assert.Equal(t, code, PaymentStatusCode(PaymentStatusLabel(code)))
	}
	assert.Equal(t, "Pendente", PaymentStatusLabel(PaymentStatusPending))
	assert.Equal(t, "OVERDUE", PaymentStatusCode("Atrasado"))
}

func TestUnknownValuesPassThrough(t *testing.T) {
	assert.Equal(t, "ARCHIVED", LeadStatusLabel("ARCHIVED"))
	assert.Equal(t, "Estornado", PaymentStatusCode("Estornado"))
}
