package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyProvider injects write failures on top of a working provider.
type flakyProvider struct {
	Provider
	failCreate bool
	failUpdate bool
}

func (f *flakyProvider) CreateLead(ctx context.Context, lead Lead) (Lead, error) {
	if f.failCreate {
		return Lead{}, errors.New("write failed")
	}
	return f.Provider.CreateLead(ctx, lead)
}

func (f *flakyProvider) UpdateLead(ctx context.Context, lead Lead) (Lead, error) {
	if f.failUpdate {
		return Lead{}, errors.New("write failed")
	}
	return f.Provider.UpdateLead(ctx, lead)
}

func loadedState(t *testing.T) *AppState {
	t.Helper()
	state := NewAppState(NewMemoryProvider(nil))
	require.NoError(t, state.Load(context.Background()))
	return state
}

func TestLoadPopulatesAllCollections(t *testing.T) {
	state := loadedState(t)

	assert.Len(t, state.Units(), 2)
	assert.Len(t, state.Users(), 3)
	assert.Len(t, state.Leads(), 5)
	assert.Len(t, state.Students(), 2)
	assert.Len(t, state.Payments(), 4)
	assert.Equal(t, "gateway", state.Config().Whatsapp.Provider)
	assert.Equal(t, "1", state.CurrentUnit())
}

func TestOptimisticCreateReconciliation(t *testing.T) {
	state := loadedState(t)

	created, err := state.CreateLead(context.Background(), Lead{
		UnitID: "1", Name: "Novo Aluno", Phone: "5511912345678",
		Instrument: "Violino", Source: "Google",
	})
	require.NoError(t, err)

	assert.False(t, IsLocalID(created.ID), "server identity must replace the placeholder")

	matches := 0
	for _, l := range state.Leads() {
		require.False(t, IsLocalID(l.ID), "no lingering placeholder in the cache")
		if l.Name == "Novo Aluno" {
			matches++
			assert.Equal(t, created.ID, l.ID)
		}
	}
	assert.Equal(t, 1, matches, "exactly one record under the server id")
}

func TestCreateFailureLeavesPlaceholder(t *testing.T) {
	provider := &flakyProvider{Provider: NewMemoryProvider(nil), failCreate: true}
	state := NewAppState(provider)
	require.NoError(t, state.Load(context.Background()))

	_, err := state.CreateLead(context.Background(), Lead{
		UnitID: "1", Name: "Fantasma", Phone: "5511900000000", Source: "Google",
	})
	require.Error(t, err)

	// No rollback: the optimistic record stays, diverged from the store.
	var placeholder *Lead
	for _, l := range state.Leads() {
		if l.Name == "Fantasma" {
			l := l
			placeholder = &l
		}
	}
	require.NotNil(t, placeholder)
	assert.True(t, IsLocalID(placeholder.ID))
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	state := loadedState(t)
	before := len(state.Leads())

	_, err := state.CreateLead(context.Background(), Lead{UnitID: "1", Phone: "5511911111111"})
	assert.Error(t, err)
	_, err = state.CreateStudent(context.Background(), Student{UnitID: "1", Name: "Sem Telefone"})
	assert.Error(t, err)

	assert.Len(t, state.Leads(), before, "rejected input never touches the cache")
}

func TestUpdateFailureKeepsOptimisticState(t *testing.T) {
	provider := &flakyProvider{Provider: NewMemoryProvider(nil), failUpdate: true}
	state := NewAppState(provider)
	require.NoError(t, state.Load(context.Background()))

	lead := state.Leads()[0]
	lead.Name = "Renomeada"
	assert.Error(t, state.UpdateLead(context.Background(), lead))
	assert.Equal(t, "Renomeada", state.Leads()[0].Name)
}

func TestAdvanceLead(t *testing.T) {
	state := loadedState(t)

	// Lead 1 starts at NEW; four advances reach WON, the fifth is a no-op.
	for i := 0; i < 4; i++ {
		_, moved, err := state.AdvanceLead(context.Background(), "1")
		require.NoError(t, err)
		assert.True(t, moved)
	}

	lead, moved, err := state.AdvanceLead(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, LeadWon, lead.Status)
}

func TestAdvanceLostLeadIsNoOp(t *testing.T) {
	state := loadedState(t)

	_, err := state.SetLeadStatus(context.Background(), "2", LeadLost)
	require.NoError(t, err)

	lead, moved, err := state.AdvanceLead(context.Background(), "2")
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, LeadLost, lead.Status)
}

func TestDirectReassignmentIsUnconstrained(t *testing.T) {
	state := loadedState(t)

	// Any status is reachable from any other, including out of terminal.
	for _, status := range PipelineOrder() {
		lead, err := state.SetLeadStatus(context.Background(), "4", status)
		require.NoError(t, err)
		assert.Equal(t, status, lead.Status)
	}
	lead, err := state.SetLeadStatus(context.Background(), "4", LeadNew)
	require.NoError(t, err)
	assert.Equal(t, LeadNew, lead.Status)
}

func TestDeleteStudentCascades(t *testing.T) {
	state := loadedState(t)

	require.NoError(t, state.DeleteStudent(context.Background(), "1"))

	for _, st := range state.Students() {
		assert.NotEqual(t, "1", st.ID)
		for _, entry := range st.Timeline {
			assert.NotContains(t, []string{"1", "2"}, entry.ID,
				"no log owned by the deleted student remains queryable")
		}
	}

	remote, err := state.provider.GetStudents(context.Background(), "")
	require.NoError(t, err)
	for _, st := range remote {
		assert.NotEqual(t, "1", st.ID)
	}
}

func TestEndToEndPipelineScenario(t *testing.T) {
	state := loadedState(t)

	// Two units, five leads, three of them in unit 1.
	state.SelectUnit("1")
	visible := state.VisibleLeads()
	require.Len(t, visible, 3)

	newColumn := func() []Lead {
		var out []Lead
		for _, l := range state.VisibleLeads() {
			if l.Status == LeadNew {
				out = append(out, l)
			}
		}
		return out
	}

	require.Len(t, newColumn(), 1)
	target := newColumn()[0]

	lead, moved, err := state.AdvanceLead(context.Background(), target.ID)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, LeadContacted, lead.Status)
	assert.Empty(t, newColumn(), "the advanced lead left the NEW column")

	// The other unit's view is untouched.
	state.SelectUnit("2")
	assert.Len(t, state.VisibleLeads(), 2)
}

func TestSaveConfigWritesThrough(t *testing.T) {
	store := NewFileStore(t.TempDir())
	provider := NewMemoryProvider(store)
	state := NewAppState(provider)
	require.NoError(t, state.Load(context.Background()))

	cfg := state.Config()
	cfg.Whatsapp.BaseURL = "https://api.z-api.io/instances/abc"
	cfg.NotificationEmail = "financeiro@playjazz.com"
	require.NoError(t, state.SaveConfig(context.Background(), cfg))

	assert.Equal(t, cfg, state.Config())

	// A fresh provider over the same store sees the persisted config.
	reloaded, err := NewMemoryProvider(store).GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "financeiro@playjazz.com", reloaded.NotificationEmail)
}
