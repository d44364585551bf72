package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "shiptrack/internal/config"
	"shiptrack/internal/domain"
	"shiptrack/internal/domain/models"
	"shiptrack/internal/eta"
	"shiptrack/internal/http/middleware"
	"shiptrack/internal/repositories"
	"shiptrack/internal/services"

	"github.com/gin-gonic/gin"
)

func shipmentService(c *gin.Context) services.ShipmentService {
	return services.ShipmentService{
		Repo:      repositories.ShipmentRepository{DB: intconfig.DB},
		Calc:      eta.NewCalculator(eta.DefaultLeadTimes()),
		RequestID: middleware.GetRequestID(c),
	}
}

// GET / — listing without row actions.
func Index(c *gin.Context) {
	shipments, err := shipmentService(c).List()
	if err != nil {
		RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"shipments": shipments})
}

// GET /shipment_list — listing with edit/delete actions, newest first.
func ShipmentList(c *gin.Context) {
	shipments, err := shipmentService(c).List()
	if err != nil {
		RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "shipment_list.html", gin.H{"shipments": shipments})
}

// POST /add_shipment
func AddShipment(c *gin.Context) {
	in, ok := bindShipmentForm(c)
	if !ok {
		return
	}

	if _, err := shipmentService(c).Create(in); err != nil {
		RenderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/shipment_list")
}

// GET /edit_shipment/:id — pre-filled edit form. The template can call
// computeETA to show the arrival date a destination change would produce.
func EditShipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	shipment, err := shipmentService(c).Get(id)
	if err != nil {
		RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_shipment.html", gin.H{"shipment": shipment})
}

// POST /update_shipment/:id — full-row replace; 404 when the id is gone.
func UpdateShipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	in, ok := bindShipmentForm(c)
	if !ok {
		return
	}

	if err := shipmentService(c).Update(id, in); err != nil {
		RenderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/shipment_list")
}

// POST /delete_shipment/:id — deliberately not reachable via GET; deleting
// an id that is already gone still redirects.
func DeleteShipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := shipmentService(c).Delete(id); err != nil {
		RenderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/shipment_list")
}

// POST /search_shipment — substring match across every column; an absent
// or empty term renders the full listing.
func SearchShipment(c *gin.Context) {
	term := strings.TrimSpace(c.PostForm("search_term"))

	shipments, err := shipmentService(c).Search(term)
	if err != nil {
		RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "shipment_list.html", gin.H{
		"shipments":   shipments,
		"search_term": term,
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RenderError(c, domain.ValidationError{Field: "id", Msg: "must be an integer", Err: err})
		return 0, false
	}
	return id, true
}

// bindShipmentForm requires every form field to be present. A missing key
// is a request error naming the field; empty values are stored as-is.
func bindShipmentForm(c *gin.Context) (models.ShipmentInput, bool) {
	vals := map[string]string{}
	for _, field := range models.FormFields {
		v, ok := c.GetPostForm(field)
		if !ok {
			RenderError(c, domain.ValidationError{Field: field, Msg: "required form field is missing"})
			return models.ShipmentInput{}, false
		}
		vals[field] = v
	}

	return models.ShipmentInput{
		SO:                     vals["so"],
		DN:                     vals["dn"],
		CustomerNameAndAddress: vals["customer_name_and_address"],
		Phone:                  vals["phone"],
		Name:                   vals["name"],
		Destination:            vals["destination"],
		ETD:                    vals["etd"],
		LogisticPartner:        vals["logistic_partner"],
		BookingDate:            vals["booking_date"],
		Packing:                vals["packing"],
		Chromascan:             vals["chromascan"],
		Weight:                 vals["weight"],
		Volume:                 vals["volume"],
		DeliveryStatus:         vals["delivery_status"],
	}, true
}
