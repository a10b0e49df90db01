package models

import "time"

// Address is where the skip is delivered.
type Address struct {
	Postcode    string `bson:"postcode" json:"postcode"`
	City        string `bson:"city" json:"city"`
	StreetName  string `bson:"streetName" json:"streetName"`
	HouseNumber string `bson:"houseNumber" json:"houseNumber"`
}

// Complete reports whether every address field is filled in.
func (a Address) Complete() bool {
	return a.Postcode != "" && a.City != "" && a.StreetName != "" && a.HouseNumber != ""
}

// Placement is where the skip will stand.
type Placement string

const (
	PlacementPrivate Placement = "private"
	PlacementPublic  Placement = "public"
)

func (p Placement) Valid() bool {
	return p == PlacementPrivate || p == PlacementPublic
}

// AdditionalCharges are the fees added on top of the skip price.
type AdditionalCharges struct {
	PermitFee Money `bson:"permitFee" json:"permitFee"`
	TonneBag  Money `bson:"tonneBag" json:"tonneBag"`
}

// BookingData accumulates the customer's choices while they move through the wizard.
// Permit requirement is not stored: it is always derived from Placement.
type BookingData struct {
	Address        Address       `json:"address"`
	WasteTypes     []string      `json:"wasteTypes"`
	SelectedSkip   *SkipOffering `json:"selectedSkip"`
	Placement      Placement     `json:"placement"`
	DeliveryDate   *time.Time    `json:"deliveryDate"`
	CollectionDate *time.Time    `json:"collectionDate"`
}

// PermitRequired is true exactly when the skip goes on a public road.
func (b BookingData) PermitRequired() bool {
	return b.Placement == PlacementPublic
}
