// ABOUTME: Tests for CRM data models
// ABOUTME: Validates type labels, name parsing, and seeded defaults
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsortiumTypeLabel(t *testing.T) {
	assert.Equal(t, "Vehicle", TypeCar.Label())
	assert.Equal(t, "Real Estate", TypeHouse.Label())
	assert.Equal(t, "Service", TypeService.Label())
	assert.Equal(t, "Consortium", TypeOther.Label())

	// Unrecognized categories fall back to the generic label
	assert.Equal(t, "Consortium", ConsortiumType("BOAT").Label())
	assert.Equal(t, "Consortium", ConsortiumType("").Label())
}

func TestLeadFirstName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"João Pedro", "João"},
		{"Ana", "Ana"},
		{"  Maria   Clara Souza ", "Maria"},
		{"", ""},
	}

	for _, tt := range tests {
		l := Lead{Name: tt.name}
		assert.Equal(t, tt.want, l.FirstName(), "name %q", tt.name)
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11999999999", DigitsOnly("(11) 99999-9999"))
	assert.Equal(t, "", DigitsOnly("sem número"))
}

func TestDefaultState(t *testing.T) {
	st := NewDefaultState()

	require.Len(t, st.Stages, 5)
	assert.Equal(t, "Lead Novo", st.Stages[0].Name)
	assert.Equal(t, "Venda Fechada", st.Stages[4].Name)
	require.Len(t, st.Templates, 3)
	assert.Empty(t, st.Leads)
	assert.Equal(t, "funnel", st.ActiveTab)
	assert.Equal(t, "#0F4C75", st.Customization.PrimaryColor)

	// Stage ids must be unique
	seen := map[string]bool{}
	for _, s := range st.Stages {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestAppStateRoundTrip(t *testing.T) {
	st := NewDefaultState()
	data, err := json.Marshal(st)
	require.NoError(t, err)

	var decoded AppState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, st.Stages, decoded.Stages)
	assert.Nil(t, decoded.SelectedLeadID)
}
