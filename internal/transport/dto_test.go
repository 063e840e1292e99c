package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "number", in: `19.99`, want: 19.99},
		{name: "string", in: `"19.99"`, want: 19.99},
		{name: "padded string", in: `" 2 "`, want: 2},
		{name: "empty string", in: `""`, want: 0},
		{name: "null", in: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.InDelta(t, tt.want, float64(n), 1e-9)
		})
	}
}

func TestNumber_UnmarshalInvalid(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))

	for _, in := range []string{`"NaN"`, `"nan"`, `"Inf"`, `"+Inf"`, `"-Infinity"`, `1e400`} {
		assert.Error(t, json.Unmarshal([]byte(in), &n), in)
	}
}

func TestReceiptRequest_Decode(t *testing.T) {
	raw := `{"email":"ana@example.com","producto":{"nombre":"Tee","descripcion":"Basic","precio":"19.99"},
		"cantidad":2,"alias":"castle.mp","direccion":"Calle 1","celular":"555","nombre":"Ana"}`

	var req ReceiptRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	assert.Equal(t, "Tee", req.Product.Name)
	assert.Equal(t, "19.99", req.Product.Price.String())
	assert.Equal(t, "2", req.Quantity.String())
	assert.Equal(t, "Calle 1", req.Address)
	assert.Equal(t, "555", req.Phone)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "39.98", Money(2*19.99))
	assert.Equal(t, "59.97", Money(3*19.99))
	assert.Equal(t, "40", Money(40))
	assert.Equal(t, "0", Money(0))
}
