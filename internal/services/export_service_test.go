package services

import (
	"database/sql/driver"
	"path/filepath"
	"testing"

	"shiptrack/internal/domain/models"
	"shiptrack/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportTestRows() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "so", "dn", "customer_name_and_address", "phone", "name", "destination",
		"etd", "eta", "logistic_partner", "booking_date", "packing", "chromascan",
		"weight", "volume", "delivery_status",
	})
	add := func(id int64, so string) {
		rows.AddRow([]driver.Value{
			id, so, "DN", "Customer, Address", "0100", "Ana", "Labuan",
			"2024-05-01", "2024-05-06", "ABC Logistics", "2024-04-28", "Crate",
			"Yes", "10kg", "0.3m3", "In Transit",
		}...)
	}
	add(2, "SO-2")
	add(1, "SO-1")
	return rows
}

func TestExportExcelWritesFullTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM shipments ORDER BY id DESC`).
		WillReturnRows(exportTestRows())

	dir := t.TempDir()
	svc := ExportService{Repo: repositories.ShipmentRepository{DB: db}, Dir: dir}

	path, err := svc.ExportExcel()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ExcelFilename), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, cells, 3, "header plus two data rows")

	assert.Equal(t, models.ExportColumns, cells[0])
	// listing order: most recent id first, ids round-trip unchanged
	assert.Equal(t, "2", cells[1][0])
	assert.Equal(t, "1", cells[2][0])
	assert.Equal(t, "SO-2", cells[1][1])
	assert.Equal(t, "In Transit", cells[1][15])
}

func TestExportExcelOverwritesPreviousFile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM shipments ORDER BY id DESC`).
		WillReturnRows(exportTestRows())
	mock.ExpectQuery(`SELECT (.+) FROM shipments ORDER BY id DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "so", "dn", "customer_name_and_address", "phone", "name", "destination",
			"etd", "eta", "logistic_partner", "booking_date", "packing", "chromascan",
			"weight", "volume", "delivery_status",
		}))

	dir := t.TempDir()
	svc := ExportService{Repo: repositories.ShipmentRepository{DB: db}, Dir: dir}

	_, err = svc.ExportExcel()
	require.NoError(t, err)

	path, err := svc.ExportExcel()
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, cells, 1, "second export replaced the first file")
}

func TestExportPDFProducesDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM shipments ORDER BY id DESC`).
		WillReturnRows(exportTestRows())

	svc := ExportService{Repo: repositories.ShipmentRepository{DB: db}}

	data, name, err := svc.ExportPDF()
	require.NoError(t, err)
	assert.Equal(t, PDFFilename, name)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
