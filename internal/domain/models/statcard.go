// internal/domain/models/statcard.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatCard is a saved card definition shown on the dashboard.
// Key is the public identifier used in URLs; ID never leaves the server.
type StatCard struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Key        string             `bson:"key" json:"key"`
	Title      string             `bson:"title" json:"title"`
	Value      string             `bson:"value" json:"value"`
	Subtitle   string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Icon       string             `bson:"icon,omitempty" json:"icon,omitempty"`         // registered glyph name
	IconSVG    string             `bson:"icon_svg,omitempty" json:"icon_svg,omitempty"` // sanitized custom markup
	Trend      string             `bson:"trend,omitempty" json:"trend,omitempty"`
	TrendValue string             `bson:"trend_value,omitempty" json:"trend_value,omitempty"`
	Variant    string             `bson:"variant,omitempty" json:"variant,omitempty"`
	Position   int                `bson:"position" json:"position"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
