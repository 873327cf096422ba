package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Restaurant struct {
	bun.BaseModel `bun:"table:restaurants"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Location  string    `bun:"location" json:"location"`
	Cuisine   string    `bun:"cuisine" json:"cuisine"`
	CreatedAt time.Time `bun:"created_at" json:"created_at"`
}
