package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceForm struct {
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"required,gte=1"`
	Membership string          `json:"membership" binding:"omitempty,membership"`
	Status     string          `json:"payment_status" binding:"omitempty,payment_status"`
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	RegisterValidators()

	err := binding.Validator.ValidateStruct(&priceForm{
		UnitPrice:  decimal.RequireFromString("0.5"),
		Membership: "X",
		Status:     "Q",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "Ensure this value is greater than or equal to 1.", fields["unit_price"])
	assert.Equal(t, "Must be one of: B, S, G.", fields["membership"])
	assert.Equal(t, "Must be one of: P, C, F.", fields["payment_status"])
}

func TestFieldErrors_AcceptsValidValues(t *testing.T) {
	RegisterValidators()

	err := binding.Validator.ValidateStruct(&priceForm{
		UnitPrice:  decimal.RequireFromString("4.99"),
		Membership: "G",
		Status:     "C",
	})
	assert.NoError(t, err)
}

func TestPagination(t *testing.T) {
	page, limit := NormalizePagination(0, 1000)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, limit)

	assert.Equal(t, 20, Offset(3, 10))

	meta := BuildMeta(2, 10, 21)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 21, meta.Total)
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		ua   string
		want DeviceInfo
	}{
		{
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			want: DeviceInfo{DeviceType: "desktop", Browser: "Chrome", OS: "Windows"},
		},
		{
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36",
			want: DeviceInfo{DeviceType: "mobile", Browser: "Chrome", OS: "Android"},
		},
		{
			ua:   "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/604.1",
			want: DeviceInfo{DeviceType: "tablet", Browser: "Safari", OS: "iOS"},
		},
		{
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 Edg/120.0",
			want: DeviceInfo{DeviceType: "desktop", Browser: "Edge", OS: "macOS"},
		},
		{
			ua:   "curl/8.4.0",
			want: DeviceInfo{DeviceType: "desktop", Browser: "Other", OS: "Other"},
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseUserAgent(tt.ua), tt.ua)
	}
}
