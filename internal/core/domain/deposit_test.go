package domain_test

import (
	"testing"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDepositStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from domain.DepositStatus
		to   domain.DepositStatus
		want bool
	}{
		{domain.DepositStatusPending, domain.DepositStatusProcessing, true},
		{domain.DepositStatusPending, domain.DepositStatusFailed, true},
		{domain.DepositStatusPending, domain.DepositStatusCompleted, false},
		{domain.DepositStatusProcessing, domain.DepositStatusCompleted, true},
		{domain.DepositStatusProcessing, domain.DepositStatusFailed, true},
		{domain.DepositStatusProcessing, domain.DepositStatusPending, false},
		{domain.DepositStatusCompleted, domain.DepositStatusFailed, false},
		{domain.DepositStatusFailed, domain.DepositStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDepositMethod_IsValid(t *testing.T) {
	assert.True(t, domain.DepositMethodSEPA.IsValid())
	assert.True(t, domain.DepositMethodCrypto.IsValid())
	assert.False(t, domain.DepositMethod("CARD").IsValid())
}
