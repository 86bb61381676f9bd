package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusGraph(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusAccepted))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusRejected))
	assert.True(t, BookingStatusAccepted.CanTransitionTo(BookingStatusCompleted))

	assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatusCompleted))
	assert.False(t, BookingStatusAccepted.CanTransitionTo(BookingStatusRejected))
	assert.False(t, BookingStatusRejected.CanTransitionTo(BookingStatusAccepted))
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusPending))
}

func TestAllowedSourceStatuses(t *testing.T) {
	assert.Equal(t, []BookingStatus{BookingStatusPending}, AllowedSourceStatuses(BookingStatusAccepted))
	assert.Equal(t, []BookingStatus{BookingStatusPending}, AllowedSourceStatuses(BookingStatusRejected))
	assert.Equal(t, []BookingStatus{BookingStatusAccepted}, AllowedSourceStatuses(BookingStatusCompleted))
	assert.Empty(t, AllowedSourceStatuses(BookingStatusPending))
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, UserRoleOwner, NormalizeRole("  Owner "))
	assert.Equal(t, UserRoleAdmin, NormalizeRole("ADMIN"))
	assert.Equal(t, UserRoleRenter, NormalizeRole("renter"))
}
