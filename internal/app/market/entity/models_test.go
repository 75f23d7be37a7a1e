package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_TotalSum(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 2, ProductInfo: ProductInfo{Price: 100.50}},
			{Quantity: 1, ProductInfo: ProductInfo{Price: 49.99}},
			{Quantity: 3, ProductInfo: ProductInfo{Price: 10}},
		},
	}

	assert.InDelta(t, 2*100.50+49.99+3*10, order.TotalSum(), 0.001)
}

func TestOrder_TotalSum_Empty(t *testing.T) {
	order := &Order{}

	assert.Zero(t, order.TotalSum())
}
