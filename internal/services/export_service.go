package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"shiptrack/internal/domain/models"
	"shiptrack/internal/repositories"
	"shiptrack/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	ExcelFilename = "shipment_list.xlsx"
	PDFFilename   = "shipment_list.pdf"
	exportSheet   = "Sheet1"
)

// ExportService renders the full shipments table as a downloadable file.
// Both exports use the same id-descending order as the listing page so a
// report always reads the way the screen does.
type ExportService struct {
	Repo      repositories.ShipmentRepository
	Dir       string
	RequestID string
}

// ExportExcel writes the whole table to Dir/shipment_list.xlsx, replacing
// any previous export, and returns the written path. Last writer wins; the
// export never touches the authoritative store.
func (s ExportService) ExportExcel() (string, error) {
	shipments, err := s.Repo.ListAll()
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(models.ExportColumns))
	for i, col := range models.ExportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return "", err
	}

	for i, sh := range shipments {
		cell := fmt.Sprintf("A%d", i+2)
		row := exportRow(sh)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return "", err
		}
	}

	path := filepath.Join(s.Dir, ExcelFilename)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}

	utils.LogEvent(s.RequestID, "export", "excel", fmt.Sprintf("rows=%d path=%s", len(shipments), path))
	return path, nil
}

// ExportPDF renders the same table as a landscape A4 PDF and returns the
// document bytes plus its download filename.
func (s ExportService) ExportPDF() ([]byte, string, error) {
	shipments, err := s.Repo.ListAll()
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Shipment List", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Shipment List")
	pdf.Ln(10)

	widths := pdfColumnWidths()

	pdf.SetFont("Helvetica", "B", 6)
	for i, col := range models.ExportColumns {
		pdf.CellFormat(widths[i], 6, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 6)
	for _, sh := range shipments {
		for i, val := range exportRow(sh) {
			text := fmt.Sprint(val)
			if len(text) > 40 {
				text = text[:40]
			}
			pdf.CellFormat(widths[i], 6, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "pdf", "rows="+strconv.Itoa(len(shipments)))
	return buf.Bytes(), PDFFilename, nil
}

func exportRow(s models.Shipment) []any {
	return []any{
		s.ID, s.SO, s.DN, s.CustomerNameAndAddress, s.Phone, s.Name, s.Destination,
		s.ETD, s.ETA, s.LogisticPartner, s.BookingDate, s.Packing, s.Chromascan,
		s.Weight, s.Volume, s.DeliveryStatus,
	}
}

func pdfColumnWidths() []float64 {
	// landscape A4 printable width is ~277mm; wide columns get more room
	widths := make([]float64, len(models.ExportColumns))
	for i, col := range models.ExportColumns {
		switch col {
		case "id":
			widths[i] = 8
		case "customer_name_and_address":
			widths[i] = 45
		case "logistic_partner", "delivery_status":
			widths[i] = 22
		default:
			widths[i] = 15.5
		}
	}
	return widths
}
