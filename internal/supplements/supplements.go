package supplements

// Supplement is a supplements row: something in the daily stack.
type Supplement struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Dosage *string `json:"dosage"`
	Timing *string `json:"timing"`
	Notes  *string `json:"notes"`
	Active bool    `json:"active"`
}
