package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_PriceWithTax(t *testing.T) {
	tests := map[string]string{
		"10.00": "11",
		"4.99":  "5.49",
		"1.00":  "1.1",
	}
	for price, want := range tests {
		p := Product{UnitPrice: decimal.RequireFromString(price)}
		assert.True(t, p.PriceWithTax().Equal(decimal.RequireFromString(want)), "%s -> %s", price, p.PriceWithTax())
	}
}

func TestCart_TotalPrice(t *testing.T) {
	bread := &Product{UnitPrice: decimal.RequireFromString("4.50")}
	coffee := &Product{UnitPrice: decimal.RequireFromString("14.00")}

	cart := Cart{Items: []CartItem{
		{Quantity: 2, Product: bread},
		{Quantity: 1, Product: coffee},
		{Quantity: 5},
	}}

	resp := cart.ToResponse()
	require.Len(t, resp.Items, 3)
	assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.RequireFromString("9")))
	assert.True(t, resp.Items[2].TotalPrice.IsZero())
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("23")))
}

func TestOrder_Total(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 3, UnitPrice: decimal.RequireFromString("2.25")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("10")},
	}}
	assert.True(t, order.Total().Equal(decimal.RequireFromString("16.75")))
}

func TestUser_HasPerm(t *testing.T) {
	assert.True(t, (&User{IsStaff: true}).HasPerm(PermViewHistory))
	assert.True(t, (&User{Permissions: PermissionList{PermViewHistory}}).HasPerm(PermViewHistory))
	assert.False(t, (&User{}).HasPerm(PermViewHistory))
}

func TestPermissionList_ScanValue(t *testing.T) {
	value, err := PermissionList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)

	var perms PermissionList
	require.NoError(t, perms.Scan(`["store.view_history"]`))
	assert.Equal(t, PermissionList{PermViewHistory}, perms)

	assert.Error(t, perms.Scan(42))
}

func TestParseBirthDate(t *testing.T) {
	date, err := ParseBirthDate(nil)
	require.NoError(t, err)
	assert.Nil(t, date)

	raw := "1990-04-21"
	date, err = ParseBirthDate(&raw)
	require.NoError(t, err)
	require.NotNil(t, date)

	customer := Customer{BirthDate: date}
	require.NotNil(t, customer.ToResponse().BirthDate)
	assert.Equal(t, raw, *customer.ToResponse().BirthDate)

	bad := "21/04/1990"
	_, err = ParseBirthDate(&bad)
	assert.Error(t, err)
}
