package models

// Record represents one parsed climate observation.
// A Record is only ever built from input whose three fields all validated.
type Record struct {
	City        string  `json:"city"`
	Year        uint32  `json:"year"`
	Temperature float32 `json:"temperature"`
}
