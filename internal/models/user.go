package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a platform user account. UserID is assigned by the auth
// service and is immutable after creation; Email is unique across all users.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID       string             `bson:"userId" json:"userId"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	ReferralID   string             `bson:"referralId,omitempty" json:"referralId,omitempty"`
	// Addresses is a denormalized list of address ids. The addresses
	// collection is the source of truth for ownership; this list is advisory
	// and is not kept in sync on address delete.
	Addresses    []string  `bson:"addresses" json:"addresses"`
	OnlineStatus bool      `bson:"onlineStatus" json:"onlineStatus"`
	IsVerified   bool      `bson:"isVerified" json:"isVerified"`
	Status       bool      `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdate carries the mutable profile fields for a partial update.
// Nil fields are left untouched.
type UserUpdate struct {
	FullName     *string `json:"fullName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	OnlineStatus *bool   `json:"onlineStatus,omitempty"`
	IsVerified   *bool   `json:"isVerified,omitempty"`
}
