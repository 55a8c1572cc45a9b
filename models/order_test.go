package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"pending", "Pendente", true},
		{"in production", "Em Produção", true},
		{"ready", "Pronto", true},
		{"delivered", "Entregue", true},
		{"empty string", "", false},
		{"unknown value", "Cancelado", false},
		{"wrong casing", "pendente", false},
		{"english translation", "Pending", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidStatus(tt.status))
		})
	}
}

func TestOrderStatuses(t *testing.T) {
	statuses := OrderStatuses()

	// The exact strings and their lifecycle order are part of the external contract
	assert.Equal(t, []string{"Pendente", "Em Produção", "Pronto", "Entregue"}, statuses)

	for _, status := range statuses {
		assert.True(t, IsValidStatus(status))
	}
}
