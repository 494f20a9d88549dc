package models

import "time"

// Timestamps is embedded by every entity. Both columns are owned by the
// database: created is set once on insert, modified on insert and on every
// update.
type Timestamps struct {
	Created  time.Time `db:"created" json:"created"`
	Modified time.Time `db:"modified" json:"modified"`
}
