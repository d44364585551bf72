package repositories

import (
	"database/sql"
	"strings"

	intconfig "shiptrack/internal/config"
	"shiptrack/internal/domain"
	"shiptrack/internal/domain/models"
)

const shipmentColumns = "id, so, dn, customer_name_and_address, phone, name, destination, etd, eta, logistic_partner, booking_date, packing, chromascan, weight, volume, delivery_status"

// ShipmentRepository wraps all SQL access to the shipments table. Every
// method is a single synchronous statement against the shared pool; the
// pool hands out and releases a connection per call.
type ShipmentRepository struct {
	DB *sql.DB
}

func (r ShipmentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (models.Shipment, error) {
	var s models.Shipment
	err := row.Scan(
		&s.ID,
		&s.SO,
		&s.DN,
		&s.CustomerNameAndAddress,
		&s.Phone,
		&s.Name,
		&s.Destination,
		&s.ETD,
		&s.ETA,
		&s.LogisticPartner,
		&s.BookingDate,
		&s.Packing,
		&s.Chromascan,
		&s.Weight,
		&s.Volume,
		&s.DeliveryStatus,
	)
	return s, err
}

func collectShipments(rows *sql.Rows) ([]models.Shipment, error) {
	defer rows.Close()

	list := []models.Shipment{}
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListAll returns every shipment, most recently created first.
func (r ShipmentRepository) ListAll() ([]models.Shipment, error) {
	rows, err := r.db().Query(`SELECT ` + shipmentColumns + ` FROM shipments ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return collectShipments(rows)
}

func (r ShipmentRepository) GetByID(id int64) (models.Shipment, error) {
	row := r.db().QueryRow(`SELECT `+shipmentColumns+` FROM shipments WHERE id=?`, id)
	s, err := scanShipment(row)
	if err == sql.ErrNoRows {
		return models.Shipment{}, domain.NotFoundError{Resource: "shipment", Err: err}
	}
	return s, err
}

// Create inserts a full row (eta already derived by the caller) and
// returns the assigned id.
func (r ShipmentRepository) Create(s models.Shipment) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO shipments (so, dn, customer_name_and_address, phone, name, destination, etd, eta, logistic_partner, booking_date, packing, chromascan, weight, volume, delivery_status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.SO, s.DN, s.CustomerNameAndAddress, s.Phone, s.Name, s.Destination, s.ETD, s.ETA,
		s.LogisticPartner, s.BookingDate, s.Packing, s.Chromascan, s.Weight, s.Volume, s.DeliveryStatus)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites every non-id column of the row. Existence of the id is
// the caller's concern: RowsAffected cannot distinguish "missing row" from
// "identical values" under MySQL, so the service checks first.
func (r ShipmentRepository) Update(id int64, s models.Shipment) error {
	_, err := r.db().Exec(`UPDATE shipments SET so=?, dn=?, customer_name_and_address=?, phone=?, name=?, destination=?, etd=?, eta=?, logistic_partner=?, booking_date=?, packing=?, chromascan=?, weight=?, volume=?, delivery_status=? WHERE id=?`,
		s.SO, s.DN, s.CustomerNameAndAddress, s.Phone, s.Name, s.Destination, s.ETD, s.ETA,
		s.LogisticPartner, s.BookingDate, s.Packing, s.Chromascan, s.Weight, s.Volume, s.DeliveryStatus, id)
	return err
}

// Delete removes the row if present. Deleting an id that does not exist is
// a no-op, not an error.
func (r ShipmentRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM shipments WHERE id=?`, id)
	return err
}

// Search returns every shipment where term appears as a substring in any
// non-id column, most recent first. Matching uses the engine's LIKE
// semantics, which are case-insensitive for ASCII under both sqlite3 and
// MySQL's default collation. An empty term matches every row.
func (r ShipmentRepository) Search(term string) ([]models.Shipment, error) {
	conds := make([]string, len(models.SearchColumns))
	args := make([]any, len(models.SearchColumns))
	like := "%" + term + "%"
	for i, col := range models.SearchColumns {
		conds[i] = col + " LIKE ?"
		args[i] = like
	}

	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE ` + strings.Join(conds, " OR ") + ` ORDER BY id DESC`
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectShipments(rows)
}
