package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLicenseStamp(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

	stamp := NewLicenseStamp("Omnera", "2.3.0", now, DefaultChangeYears)

	assert.Equal(t, "Omnera", stamp.Product)
	assert.Equal(t, "2.3.0", stamp.Version)
	assert.Equal(t, 2025, stamp.Year)
	assert.Equal(t, "2029-03-14", stamp.ChangeDateString())
}

func TestNewLicenseStamp_LeapDay(t *testing.T) {
	now := time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)

	stamp := NewLicenseStamp("Omnera", "1.0.0", now, 4)

	assert.Equal(t, "2032-02-29", stamp.ChangeDateString())
}
