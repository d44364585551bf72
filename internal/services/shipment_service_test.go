package services

import (
	"testing"

	"shiptrack/internal/domain"
	"shiptrack/internal/domain/models"
	"shiptrack/internal/eta"
	"shiptrack/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShipmentInput() models.ShipmentInput {
	return models.ShipmentInput{
		SO:                     "SO-100",
		DN:                     "DN-100",
		CustomerNameAndAddress: "Acme Sdn Bhd, Jalan Satu, Miri",
		Phone:                  "0852001000",
		Name:                   "Ali",
		Destination:            "Sandakan",
		ETD:                    "2024-03-01",
		LogisticPartner:        "ABC Logistics",
		BookingDate:            "2024-02-28",
		Packing:                "Carton",
		Chromascan:             "Yes",
		Weight:                 "25kg",
		Volume:                 "0.8m3",
		DeliveryStatus:         "Booked",
	}
}

func newTestService(t *testing.T) (ShipmentService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "sqlmock init")

	svc := ShipmentService{
		Repo: repositories.ShipmentRepository{DB: db},
		Calc: eta.NewCalculator(eta.DefaultLeadTimes()),
	}
	return svc, mock, func() { db.Close() }
}

func TestCreateDerivesETA(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	in := testShipmentInput()

	// Sandakan carries a 14-day lead time, so eta must land on 2024-03-15.
	mock.ExpectExec(`INSERT INTO shipments`).
		WithArgs(in.SO, in.DN, in.CustomerNameAndAddress, in.Phone, in.Name, in.Destination,
			in.ETD, "2024-03-15", in.LogisticPartner, in.BookingDate, in.Packing,
			in.Chromascan, in.Weight, in.Volume, in.DeliveryStatus).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBadETDIsFormatError(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	in := testShipmentInput()
	in.ETD = "01-03-2024"

	_, err := svc.Create(in)
	require.Error(t, err)
	assert.True(t, domain.IsFormat(err), "expected FormatError, got %v", err)

	// nothing may reach storage on a bad date
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	mock.ExpectQuery(`SELECT (.+) FROM shipments WHERE id=\?`).WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.Update(9, testShipmentInput())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err), "expected NotFoundError, got %v", err)
}

func TestUpdateRecomputesETA(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	existing := sqlmock.NewRows([]string{
		"id", "so", "dn", "customer_name_and_address", "phone", "name", "destination",
		"etd", "eta", "logistic_partner", "booking_date", "packing", "chromascan",
		"weight", "volume", "delivery_status",
	}).AddRow(int64(5), "SO-5", "DN-5", "Old Customer", "000", "Old", "Miri",
		"2024-01-01", "2024-01-02", "Old Partner", "2023-12-30", "Box", "No",
		"1kg", "0.1m3", "Booked")

	mock.ExpectQuery(`SELECT (.+) FROM shipments WHERE id=\?`).WithArgs(int64(5)).
		WillReturnRows(existing)

	in := testShipmentInput()
	in.Destination = "Kuching"
	in.ETD = "2024-01-01"

	mock.ExpectExec(`UPDATE shipments SET`).
		WithArgs(in.SO, in.DN, in.CustomerNameAndAddress, in.Phone, in.Name, in.Destination,
			in.ETD, "2024-01-08", in.LogisticPartner, in.BookingDate, in.Packing,
			in.Chromascan, in.Weight, in.Volume, in.DeliveryStatus, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Update(5, in))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTwiceIsIdempotent(t *testing.T) {
	svc, mock, done := newTestService(t)
	defer done()

	mock.ExpectExec(`DELETE FROM shipments WHERE id=\?`).WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM shipments WHERE id=\?`).WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.Delete(3))
	require.NoError(t, svc.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}
