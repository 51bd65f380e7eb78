package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu item kinds. All five share one table, tagged by the Kind column;
// the wire format differs only in field-name prefix (food_name,
// fruit_name, ...) and is produced by the handlers' kind configuration.
const (
	KindFood      = "food"
	KindFruit     = "fruit"
	KindAddon     = "addon"
	KindHotDrink  = "hot_drink"
	KindSoftDrink = "soft_drink"
)

// Price is a nested amount+currency pair, embedded into menu items and
// orders.
type Price struct {
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// MenuItem is the generic catalog entry backing foods, fruits, addons,
// hot drinks and soft drinks. PreparationTime is constrained to [0,9]
// both here and in the handlers.
type MenuItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Kind            string    `gorm:"not null;index" json:"-"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	Name            string    `gorm:"not null" json:"name"`
	MealCategory    string    `json:"meal_category"`
	Category        string    `json:"category"`
	ImageURL1       string    `json:"image_url1"`
	ImageURL2       string    `json:"image_url2"`
	Price           Price     `gorm:"embedded;embeddedPrefix:price_" json:"price"`
	Availability    bool      `json:"availability"`
	Description     string    `json:"description"`
	PreparationTime int       `gorm:"check:preparation_time >= 0 AND preparation_time <= 9" json:"preparation_time"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
