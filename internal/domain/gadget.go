package domain

import "time"

type GadgetStatus string

const (
	GadgetStatusAvailable GadgetStatus = "Available"
	GadgetStatusReserved  GadgetStatus = "Reserved"
	GadgetStatusInUse     GadgetStatus = "In Use"
	GadgetStatusInRepair  GadgetStatus = "In Repair"
	GadgetStatusLost      GadgetStatus = "Lost"
)

type GadgetType struct {
	ID   int32  `json:"id"`
	Name string `json:"type_name"`
}

type Gadget struct {
	ID               int32        `json:"id"`
	SerialNumber     string       `json:"serial_number"`
	Name             string       `json:"gadget_name"`
	TypeID           int32        `json:"type_id"`
	TypeName         string       `json:"type_name,omitempty"`
	Description      string       `json:"description"`
	PricePerDayCents int32        `json:"price_per_day_cents"`
	Status           GadgetStatus `json:"status"`
	CreatedOn        time.Time    `json:"created_on"`
}
