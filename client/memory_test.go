package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProviderScopedReads(t *testing.T) {
	m := NewMemoryProvider(nil)
	ctx := context.Background()

	all, err := m.GetLeads(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	scoped, err := m.GetLeads(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, scoped, 3)

	none, err := m.GetLeads(ctx, "404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryProviderCreateDefaults(t *testing.T) {
	m := NewMemoryProvider(nil)
	ctx := context.Background()

	created, err := m.CreateLead(ctx, Lead{UnitID: "2", Name: "X", Phone: "5521900000001", Source: "Google"})
	require.NoError(t, err)
	assert.Equal(t, LeadNew, created.Status)
	assert.NotEmpty(t, created.CreatedAt)
	assert.False(t, IsLocalID(created.ID))

	student, err := m.CreateStudent(ctx, Student{UnitID: "2", Name: "Y", Phone: "5521900000002"})
	require.NoError(t, err)
	assert.Equal(t, "Active", student.Status)
	assert.Empty(t, student.Timeline)
}

func TestMemoryProviderDeleteUnknown(t *testing.T) {
	m := NewMemoryProvider(nil)
	ctx := context.Background()

	assert.Error(t, m.DeleteLead(ctx, "999"))
	assert.Error(t, m.DeleteStudent(ctx, "999"))
	_, err := m.UpdateLead(ctx, Lead{ID: "999"})
	assert.Error(t, err)
}

func TestFileStoreConfigPersistence(t *testing.T) {
	dir := t.TempDir()
	m := NewMemoryProvider(NewFileStore(dir))
	ctx := context.Background()

	cfg, err := m.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "unsaved config falls back to defaults")

	cfg.Gemini.APIKey = "secret"
	require.NoError(t, m.SaveConfig(ctx, cfg))

	again, err := NewMemoryProvider(NewFileStore(dir)).GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret", again.Gemini.APIKey)
}
