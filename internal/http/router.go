package api

import (
	"html/template"
	"log"
	stdhttp "net/http"

	intconfig "shiptrack/internal/config"
	"shiptrack/internal/eta"
	h "shiptrack/internal/http/handlers"
	"shiptrack/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	// computeETA lets the edit form preview the arrival date per destination
	calc := eta.NewCalculator(eta.DefaultLeadTimes())
	r.SetFuncMap(template.FuncMap{
		"computeETA": func(etd, destination string) string {
			out, err := calc.Compute(etd, destination)
			if err != nil {
				return ""
			}
			return out
		},
	})
	r.LoadHTMLGlob(env.TemplatesGlob)

	h.SetExportDir(env.ExportDir)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", h.Health)
	r.GET("/db-check", h.DBCheck)

	r.GET("/", h.Index)
	r.GET("/shipment_list", h.ShipmentList)
	r.POST("/add_shipment", h.AddShipment)
	r.GET("/edit_shipment/:id", h.EditShipment)
	r.POST("/update_shipment/:id", h.UpdateShipment)
	// delete is a state change, so it is not reachable via GET
	r.POST("/delete_shipment/:id", h.DeleteShipment)
	r.POST("/search_shipment", h.SearchShipment)
	r.GET("/export_excel", h.ExportExcel)
	r.GET("/export_pdf", h.ExportPDF)

	return r
}
