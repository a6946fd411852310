package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address types accepted by the API.
const (
	AddressTypeHome  = "home"
	AddressTypeWork  = "work"
	AddressTypeOther = "other"
)

// ValidAddressType reports whether t is one of the recognized address types.
func ValidAddressType(t string) bool {
	return t == AddressTypeHome || t == AddressTypeWork || t == AddressTypeOther
}

// Address represents a postal address owned by a user. At most one address
// per userId has IsDefault set; the address repository maintains that
// invariant on every write path.
type Address struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AddressID      string             `bson:"addressId" json:"addressId"`
	UserID         string             `bson:"userId" json:"userId"`
	Type           string             `bson:"type" json:"type"`
	Street         string             `bson:"street" json:"street"`
	StreetNumber   string             `bson:"streetNumber,omitempty" json:"streetNumber,omitempty"`
	BuildingNumber string             `bson:"buildingNumber,omitempty" json:"buildingNumber,omitempty"`
	FloorNumber    string             `bson:"floorNumber,omitempty" json:"floorNumber,omitempty"`
	Latitude       *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	ContactName    string             `bson:"contactName,omitempty" json:"contactName,omitempty"`
	ContactPhone   string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	IsDefault      bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AddressUpdate carries the mutable address fields for a partial update.
// Nil fields are left untouched.
type AddressUpdate struct {
	Type           *string  `json:"type,omitempty"`
	Street         *string  `json:"street,omitempty"`
	StreetNumber   *string  `json:"streetNumber,omitempty"`
	BuildingNumber *string  `json:"buildingNumber,omitempty"`
	FloorNumber    *string  `json:"floorNumber,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	ContactName    *string  `json:"contactName,omitempty"`
	ContactPhone   *string  `json:"contactPhone,omitempty"`
	IsDefault      *bool    `json:"isDefault,omitempty"`
}
