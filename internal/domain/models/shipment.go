package models

// Shipment is one tracked delivery record, keyed by an auto-assigned id.
// All non-id columns are stored as text; etd/eta/booking_date hold
// YYYY-MM-DD strings. eta is always derived server-side from etd and
// destination, never taken from the caller.
type Shipment struct {
	ID                     int64  `json:"id"`
	SO                     string `json:"so"`
	DN                     string `json:"dn"`
	CustomerNameAndAddress string `json:"customer_name_and_address"`
	Phone                  string `json:"phone"`
	Name                   string `json:"name"`
	Destination            string `json:"destination"`
	ETD                    string `json:"etd"`
	ETA                    string `json:"eta"`
	LogisticPartner        string `json:"logistic_partner"`
	BookingDate            string `json:"booking_date"`
	Packing                string `json:"packing"`
	Chromascan             string `json:"chromascan"`
	Weight                 string `json:"weight"`
	Volume                 string `json:"volume"`
	DeliveryStatus         string `json:"delivery_status"`
}

// ShipmentInput carries the caller-supplied fields of a shipment.
// It deliberately has no eta: that column is computed at write time.
type ShipmentInput struct {
	SO                     string
	DN                     string
	CustomerNameAndAddress string
	Phone                  string
	Name                   string
	Destination            string
	ETD                    string
	LogisticPartner        string
	BookingDate            string
	Packing                string
	Chromascan             string
	Weight                 string
	Volume                 string
	DeliveryStatus         string
}

// FormFields lists the form-supplied columns in schema order. Every one of
// them must be present on add/update requests.
var FormFields = []string{
	"so",
	"dn",
	"customer_name_and_address",
	"phone",
	"name",
	"destination",
	"etd",
	"logistic_partner",
	"booking_date",
	"packing",
	"chromascan",
	"weight",
	"volume",
	"delivery_status",
}

// SearchColumns lists every non-id column matched by substring search.
var SearchColumns = []string{
	"so",
	"dn",
	"customer_name_and_address",
	"phone",
	"name",
	"destination",
	"etd",
	"eta",
	"logistic_partner",
	"booking_date",
	"packing",
	"chromascan",
	"weight",
	"volume",
	"delivery_status",
}

// ExportColumns is the fixed 16-column order used by the xlsx and PDF exports.
var ExportColumns = []string{
	"id",
	"so",
	"dn",
	"customer_name_and_address",
	"phone",
	"name",
	"destination",
	"etd",
	"eta",
	"logistic_partner",
	"booking_date",
	"packing",
	"chromascan",
	"weight",
	"volume",
	"delivery_status",
}
