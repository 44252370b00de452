package models

import "time"

// TrendPoint is one day of the efficiency trend, the day is taken from the
// summary's embedded date field, not from the row timestamp.
type TrendPoint struct {
	Day           time.Time `db:"day"`
	AvgEfficiency float64   `db:"avg_efficiency"`
}
