package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     OrderState
		to       OrderState
		expected bool
	}{
		{"basket to new", OrderStateBasket, OrderStateNew, true},
		{"new to confirmed", OrderStateNew, OrderStateConfirmed, true},
		{"new to canceled", OrderStateNew, OrderStateCanceled, true},
		{"confirmed to assembled", OrderStateConfirmed, OrderStateAssembled, true},
		{"assembled to sent", OrderStateAssembled, OrderStateSent, true},
		{"sent to delivered", OrderStateSent, OrderStateDelivered, true},
		{"basket to confirmed skips checkout", OrderStateBasket, OrderStateConfirmed, false},
		{"new back to basket", OrderStateNew, OrderStateBasket, false},
		{"delivered is final", OrderStateDelivered, OrderStateCanceled, false},
		{"canceled is final", OrderStateCanceled, OrderStateNew, false},
		{"sent cannot be canceled", OrderStateSent, OrderStateCanceled, false},
		{"unknown source state", OrderState("pending"), OrderStateNew, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanTransition(tt.from, tt.to))
		})
	}
}

func TestOrderState_Valid(t *testing.T) {
	valid := []OrderState{
		OrderStateBasket,
		OrderStateNew,
		OrderStateConfirmed,
		OrderStateAssembled,
		OrderStateSent,
		OrderStateDelivered,
		OrderStateCanceled,
	}
	for _, state := range valid {
		assert.True(t, state.Valid(), "state %s must be valid", state)
	}

	assert.False(t, OrderState("pending").Valid())
	assert.False(t, OrderState("").Valid())
}
