package validation

import (
	"encoding/json"
	"testing"

	"yoga-marketplace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type numbers struct {
	Seats Int    `json:"seats" validate:"gte=0"`
	Price Float  `json:"price"`
	Email string `json:"email" validate:"required,email"`
}

func TestLenientNumbers(t *testing.T) {
	cases := []struct {
		body  string
		seats Int
		price Float
	}{
		{`{"seats":10,"price":20}`, 10, 20},
		{`{"seats":"12","price":"22.5"}`, 12, 22.5},
		{`{"seats":" 7 ","price":" 3 "}`, 7, 3},
		{`{"seats":10.0}`, 10, 0},
		{`{"seats":null,"price":""}`, 0, 0},
	}
	for _, tc := range cases {
		var n numbers
		require.NoError(t, json.Unmarshal([]byte(tc.body), &n), tc.body)
		assert.Equal(t, tc.seats, n.Seats, tc.body)
		assert.Equal(t, tc.price, n.Price, tc.body)
	}
}

func TestLenientNumbersRejectGarbage(t *testing.T) {
	for _, body := range []string{`{"seats":"ten"}`, `{"seats":1.5}`, `{"price":"abc"}`, `{"seats":"12abc"}`} {
		var n numbers
		assert.Error(t, json.Unmarshal([]byte(body), &n), body)
	}
}

func TestStructUsesJSONNames(t *testing.T) {
	err := Struct(numbers{Seats: -1, Email: "nope"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "seats: gte=0")
	assert.Contains(t, err.Error(), "email: email")

	assert.NoError(t, Struct(numbers{Seats: 1, Email: "a@x.com"}))
}
