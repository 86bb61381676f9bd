package services_test

import (
	"context"
	"testing"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAdminFixture() (*MockUserRepo, *MockVehicleRepo, *MockBookingRepo, services.AdminService) {
	userRepo := new(MockUserRepo)
	vehicleRepo := new(MockVehicleRepo)
	bookingRepo := new(MockBookingRepo)
	svc := services.NewAdminService(userRepo, vehicleRepo, bookingRepo, logger.NewNop())
	return userRepo, vehicleRepo, bookingRepo, svc
}

func TestApproveUser_SetsVerified(t *testing.T) {
	userRepo, _, _, svc := newAdminFixture()

	userID := primitive.NewObjectID()
	userRepo.On("Update", mock.Anything, userID, map[string]interface{}{
		"is_verified": true,
	}).Return(nil)

	err := svc.ApproveUser(context.Background(), userID)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestDenyUser_ClearsSubmittedDocuments(t *testing.T) {
	userRepo, _, _, svc := newAdminFixture()

	userID := primitive.NewObjectID()
	userRepo.On("Update", mock.Anything, userID, map[string]interface{}{
		"is_verified":          false,
		"gov_id_file":          "",
		"driving_license_file": "",
	}).Return(nil)

	err := svc.DenyUser(context.Background(), userID)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestDenyUser_NotFound(t *testing.T) {
	userRepo, _, _, svc := newAdminFixture()

	userID := primitive.NewObjectID()
	userRepo.On("Update", mock.Anything, userID, mock.Anything).Return(interfaces.ErrNotFound)

	err := svc.DenyUser(context.Background(), userID)

	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestDenyVehicle_ClearsComplianceDocuments(t *testing.T) {
	_, vehicleRepo, _, svc := newAdminFixture()

	vehicleID := primitive.NewObjectID()
	vehicleRepo.On("Update", mock.Anything, vehicleID, map[string]interface{}{
		"is_verified":    false,
		"rc_file":        "",
		"insurance_file": "",
		"pollution_file": "",
	}).Return(nil)

	err := svc.DenyVehicle(context.Background(), vehicleID)

	require.NoError(t, err)
	vehicleRepo.AssertExpectations(t)
}

func TestApproveVehicle_SetsVerified(t *testing.T) {
	_, vehicleRepo, _, svc := newAdminFixture()

	vehicleID := primitive.NewObjectID()
	vehicleRepo.On("Update", mock.Anything, vehicleID, map[string]interface{}{
		"is_verified": true,
	}).Return(nil)

	err := svc.ApproveVehicle(context.Background(), vehicleID)

	require.NoError(t, err)
	vehicleRepo.AssertExpectations(t)
}

func TestDashboard_GathersQueuesAndRecentBookings(t *testing.T) {
	userRepo, vehicleRepo, bookingRepo, svc := newAdminFixture()

	ownerID := primitive.NewObjectID()
	renterID := primitive.NewObjectID()
	vehicleID := primitive.NewObjectID()
	deletedVehicleID := primitive.NewObjectID()

	pendingUsers := []*models.User{{ID: primitive.NewObjectID(), Name: "Pending"}}
	pendingVehicles := []*models.Vehicle{{ID: vehicleID, OwnerID: ownerID, Title: "Royal Enfield"}}
	owner := &models.User{ID: ownerID, Name: "Asha"}
	renter := &models.User{ID: renterID, Name: "Vikram"}
	bookings := []*models.Booking{
		{ID: primitive.NewObjectID(), VehicleID: vehicleID, RenterID: renterID},
		{ID: primitive.NewObjectID(), VehicleID: deletedVehicleID, RenterID: renterID},
	}

	userRepo.On("GetUnverified", mock.Anything).Return(pendingUsers, nil)
	vehicleRepo.On("GetUnverified", mock.Anything).Return(pendingVehicles, nil)
	userRepo.On("GetByIDs", mock.Anything, []primitive.ObjectID{ownerID}).Return(map[primitive.ObjectID]*models.User{ownerID: owner}, nil)
	bookingRepo.On("GetRecent", mock.Anything, utils.RecentBookingsLimit).Return(bookings, nil)
	userRepo.On("GetByIDs", mock.Anything, []primitive.ObjectID{renterID}).Return(map[primitive.ObjectID]*models.User{renterID: renter}, nil)
	vehicleRepo.On("GetByID", mock.Anything, vehicleID).Return(pendingVehicles[0], nil)
	vehicleRepo.On("GetByID", mock.Anything, deletedVehicleID).Return(nil, interfaces.ErrNotFound)

	dashboard, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	require.Len(t, dashboard.UnverifiedUsers, 1)
	require.Len(t, dashboard.UnverifiedVehicles, 1)
	assert.Equal(t, "Asha", dashboard.UnverifiedVehicles[0].Owner.Name)
	require.Len(t, dashboard.RecentBookings, 2)
	assert.Equal(t, "Vikram", dashboard.RecentBookings[0].Renter.Name)
	assert.Nil(t, dashboard.RecentBookings[1].Vehicle)
}

func TestMarkPaid_RecordsTransferReference(t *testing.T) {
	_, _, bookingRepo, svc := newAdminFixture()

	bookingID := primitive.NewObjectID()
	booking := &models.Booking{ID: bookingID, PaymentStatus: models.PaymentStatusUnpaid}

	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("Update", mock.Anything, bookingID, map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
		"utr_number":     "UTR123456",
	}).Return(nil)

	updated, err := svc.MarkPaid(context.Background(), bookingID, &validators.MarkPaidRequest{UTRNumber: "UTR123456"})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, "UTR123456", updated.UTRNumber)
	bookingRepo.AssertExpectations(t)
}

func TestMarkPaid_ReferenceOptional(t *testing.T) {
	_, _, bookingRepo, svc := newAdminFixture()

	bookingID := primitive.NewObjectID()
	booking := &models.Booking{ID: bookingID, PaymentStatus: models.PaymentStatusUnpaid}

	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("Update", mock.Anything, bookingID, map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
	}).Return(nil)

	updated, err := svc.MarkPaid(context.Background(), bookingID, &validators.MarkPaidRequest{})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
}
