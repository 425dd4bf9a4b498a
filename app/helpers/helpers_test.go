package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Name":           "name",
		"CustomerID":     "customer_id",
		"CommissionRate": "commission_rate",
		"ImageURL":       "image_url",
		"Lot":            "lot",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in))
	}
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Customer ID", FieldLabel("CustomerID"))
	assert.Equal(t, "Commission rate", FieldLabel("CommissionRate"))
	assert.Equal(t, "Name", FieldLabel("Name"))
}
