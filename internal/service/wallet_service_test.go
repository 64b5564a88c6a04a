package service

import (
	"testing"
	"time"

	"agegate-admin-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeSpecsBothBounds(t *testing.T) {
	specs, err := dateRangeSpecs("2026-01-10", "2026-01-20", "wallet_transactions.created_at")
	assert.NoError(t, err)
	assert.Len(t, specs, 2)

	after, ok := specs[0].(specification.CreatedAfter)
	assert.True(t, ok)
	assert.Equal(t, "wallet_transactions.created_at", after.Column)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), after.After)

	// The upper bound is inclusive of the named day, so the spec carries
	// midnight of the following day with a strict less-than.
	before, ok := specs[1].(specification.CreatedBefore)
	assert.True(t, ok)
	assert.Equal(t, "wallet_transactions.created_at", before.Column)
	assert.Equal(t, time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC), before.Before)
}

func TestDateRangeSpecsPartialAndEmpty(t *testing.T) {
	specs, err := dateRangeSpecs("", "", "wallet_transactions.created_at")
	assert.NoError(t, err)
	assert.Empty(t, specs)

	specs, err = dateRangeSpecs("2026-03-01", "", "wallet_transactions.created_at")
	assert.NoError(t, err)
	assert.Len(t, specs, 1)
	_, ok := specs[0].(specification.CreatedAfter)
	assert.True(t, ok)

	specs, err = dateRangeSpecs("", "2026-03-31", "wallet_transactions.created_at")
	assert.NoError(t, err)
	assert.Len(t, specs, 1)
	_, ok = specs[0].(specification.CreatedBefore)
	assert.True(t, ok)
}

func TestDateRangeSpecsMalformedDates(t *testing.T) {
	_, err := dateRangeSpecs("not-a-date", "", "wallet_transactions.created_at")
	assert.EqualError(t, err, "invalid date_from filter")

	_, err = dateRangeSpecs("", "31-12-2026", "wallet_transactions.created_at")
	assert.EqualError(t, err, "invalid date_to filter")
}
