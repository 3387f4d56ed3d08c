package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: UniqueViolation, Constraint: "payments_appointment_id_key"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "payments_appointment_id_key"))
	assert.False(t, IsUniqueViolation(err, "customers_email_key"))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}

func TestCode(t *testing.T) {
	assert.Equal(t, ForeignKeyViolation, Code(&pq.Error{Code: ForeignKeyViolation}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: ForeignKeyViolation}))
	assert.Empty(t, Code(errors.New("plain")))
}

func TestIsValueRejected(t *testing.T) {
	assert.True(t, IsValueRejected(fmt.Errorf("insert: %w", &pq.Error{Code: CheckViolation})))
	assert.True(t, IsValueRejected(&pq.Error{Code: NumericOutOfRange}))
	assert.False(t, IsValueRejected(&pq.Error{Code: UniqueViolation}))
	assert.False(t, IsValueRejected(errors.New("plain")))
}
