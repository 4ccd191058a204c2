package pos

import (
	"time"

	"github.com/google/uuid"
)

// PosType classifies what kind of outlet a POS is.
type PosType string

const (
	TypeCafe           PosType = "CAFE"
	TypeVendingMachine PosType = "VENDING_MACHINE"
	TypeBakery         PosType = "BAKERY"
	TypeCafeteria      PosType = "CAFETERIA"
	TypeCoffee         PosType = "COFFEE"
)

// PosTypes lists every valid PosType.
var PosTypes = []PosType{TypeCafe, TypeVendingMachine, TypeBakery, TypeCafeteria, TypeCoffee}

func (t PosType) Valid() bool {
	for _, v := range PosTypes {
		if t == v {
			return true
		}
	}
	return false
}

// CampusType identifies the university campus a POS belongs to.
type CampusType string

const (
	CampusAltstadt CampusType = "ALTSTADT"
	CampusBergheim CampusType = "BERGHEIM"
	CampusINF      CampusType = "INF"
	CampusMain     CampusType = "MAIN"
)

var CampusTypes = []CampusType{CampusAltstadt, CampusBergheim, CampusINF, CampusMain}

func (c CampusType) Valid() bool {
	for _, v := range CampusTypes {
		if c == v {
			return true
		}
	}
	return false
}

// Pos is a point of sale on campus.
type Pos struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        PosType    `json:"type"`
	Campus      CampusType `json:"campus"`
	Street      string     `json:"street"`
	HouseNumber string     `json:"houseNumber"`
	PostalCode  int        `json:"postalCode"`
	City        string     `json:"city"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PosRequest is the payload for creating or replacing a POS.
// ID is only accepted on update, where it must match the path id.
type PosRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Name        string     `json:"name" validate:"required,notblank,max=255"`
	Description string     `json:"description" validate:"max=2000"`
	Type        PosType    `json:"type" validate:"required,pos_type"`
	Campus      CampusType `json:"campus" validate:"required,campus_type"`
	Street      string     `json:"street" validate:"required,notblank,max=255"`
	HouseNumber string     `json:"houseNumber" validate:"required,notblank,max=10"`
	PostalCode  int        `json:"postalCode" validate:"required,min=1,max=99999"`
	City        string     `json:"city" validate:"required,notblank,max=255"`
}

// apply copies every mutable field of the request onto p.
func (req PosRequest) apply(p *Pos) {
	p.Name = req.Name
	p.Description = req.Description
	p.Type = req.Type
	p.Campus = req.Campus
	p.Street = req.Street
	p.HouseNumber = req.HouseNumber
	p.PostalCode = req.PostalCode
	p.City = req.City
}
