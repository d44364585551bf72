package services

import (
	"fmt"

	"shiptrack/internal/domain/models"
	"shiptrack/internal/eta"
	"shiptrack/internal/repositories"
	"shiptrack/internal/utils"
)

// ShipmentService applies the write-time rules around the shipments table:
// eta is always recomputed from etd+destination, and updates require the
// target row to exist.
type ShipmentService struct {
	Repo      repositories.ShipmentRepository
	Calc      eta.Calculator
	RequestID string
}

func (s ShipmentService) List() ([]models.Shipment, error) {
	return s.Repo.ListAll()
}

func (s ShipmentService) Get(id int64) (models.Shipment, error) {
	return s.Repo.GetByID(id)
}

func (s ShipmentService) Search(term string) ([]models.Shipment, error) {
	return s.Repo.Search(term)
}

// Create derives eta and persists a new row, returning the assigned id.
func (s ShipmentService) Create(in models.ShipmentInput) (int64, error) {
	row, err := s.buildRow(in)
	if err != nil {
		return 0, err
	}

	id, err := s.Repo.Create(row)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "shipment", "create", fmt.Sprintf("id=%d destination=%s eta=%s", id, row.Destination, row.ETA))
	return id, nil
}

// Update replaces every non-id column of an existing row, recomputing eta
// from the supplied etd/destination. Updating a missing id is an error,
// unlike delete.
func (s ShipmentService) Update(id int64, in models.ShipmentInput) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}

	row, err := s.buildRow(in)
	if err != nil {
		return err
	}

	if err := s.Repo.Update(id, row); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "shipment", "update", fmt.Sprintf("id=%d eta=%s", id, row.ETA))
	return nil
}

// Delete is idempotent: removing an id that is already gone succeeds.
func (s ShipmentService) Delete(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "shipment", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func (s ShipmentService) buildRow(in models.ShipmentInput) (models.Shipment, error) {
	computedETA, err := s.Calc.Compute(in.ETD, in.Destination)
	if err != nil {
		return models.Shipment{}, err
	}

	return models.Shipment{
		SO:                     in.SO,
		DN:                     in.DN,
		CustomerNameAndAddress: in.CustomerNameAndAddress,
		Phone:                  in.Phone,
		Name:                   in.Name,
		Destination:            in.Destination,
		ETD:                    in.ETD,
		ETA:                    computedETA,
		LogisticPartner:        in.LogisticPartner,
		BookingDate:            in.BookingDate,
		Packing:                in.Packing,
		Chromascan:             in.Chromascan,
		Weight:                 in.Weight,
		Volume:                 in.Volume,
		DeliveryStatus:         in.DeliveryStatus,
	}, nil
}
