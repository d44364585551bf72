package handlers

import (
	"net/http"

	intconfig "shiptrack/internal/config"
	"shiptrack/internal/http/middleware"
	"shiptrack/internal/repositories"
	"shiptrack/internal/services"

	"github.com/gin-gonic/gin"
)

var exportDir = "."

// SetExportDir configures where export files are written. Called once at
// startup before the server accepts requests.
func SetExportDir(dir string) {
	if dir != "" {
		exportDir = dir
	}
}

func exportService(c *gin.Context) services.ExportService {
	return services.ExportService{
		Repo:      repositories.ShipmentRepository{DB: intconfig.DB},
		Dir:       exportDir,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /export_excel — writes shipment_list.xlsx (replacing the previous
// export) and streams it as an attachment.
func ExportExcel(c *gin.Context) {
	path, err := exportService(c).ExportExcel()
	if err != nil {
		RenderError(c, err)
		return
	}
	c.FileAttachment(path, services.ExcelFilename)
}

// GET /export_pdf — same table as a PDF attachment.
func ExportPDF(c *gin.Context) {
	data, filename, err := exportService(c).ExportPDF()
	if err != nil {
		RenderError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
