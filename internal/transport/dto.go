package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProductForm is the multipart body of POST /productos and PUT /productos/:id.
// precio stays a string until the service parses it.
type ProductForm struct {
	Name        string `form:"nombre"`
	Description string `form:"descripcion"`
	Price       string `form:"precio"`
}

type ReceiptProduct struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Price       Number `json:"precio"`
}

type ReceiptRequest struct {
	Email    string         `json:"email"`
	Product  ReceiptProduct `json:"producto"`
	Quantity Number         `json:"cantidad"`
	Alias    string         `json:"alias"`
	Address  string         `json:"direccion"`
	Phone    string         `json:"celular"`
	Name     string         `json:"nombre"`
}

type MessageResponse struct {
	Message  string `json:"mensaje"`
	ImageURL string `json:"imagen_url,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Number accepts a JSON number or a numeric string. Decimal columns reach
// clients as strings from some drivers and are sent back unchanged.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if math.IsInf(f, 0) {
		return fmt.Errorf("invalid number %s", data)
	}
	*n = Number(f)
	return nil
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Money rounds to cents and drops trailing zeros: 39.98, 40.
func Money(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
