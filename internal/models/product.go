package models

import (
	"encoding/json"
	"time"
)

// ProductDB represents a product row in the database.
type ProductDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key, may be client-supplied on create
	Name        string    `json:"name" db:"name"`               // Required display name
	Description *string   `json:"description" db:"description"` // Optional free text
	Price       float64   `json:"price" db:"price"`             // NUMERIC(5,2), |price| < 1000
	Stock       int       `json:"stock" db:"stock"`             // Units in stock
	Image       *string   `json:"image" db:"image"`             // Optional blob store key
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Price carries the raw price literal from a request body. Clients send
// prices as either a JSON number or a string; the literal is kept as-is
// so precision is validated on what was actually sent.
type Price string

func (p *Price) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	*p = Price(b)
	return nil
}

// ProductCreate holds the validated-but-unparsed input for product creation.
type ProductCreate struct {
	ID          *int64  // Optional client-chosen id
	Name        string
	Description *string
	Price       string // Raw literal, validated by the service
	Stock       int
	Image       *string
}

// ProductPatch is a partial update: nil fields are left untouched.
type ProductPatch struct {
	ID          *int64
	Name        *string
	Description *string
	Price       *string // Raw literal, validated by the service
	Stock       *int
	Image       *string
}
