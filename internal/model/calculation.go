package model

// RequestPayload is the body of POST /api/calculate_time.
type RequestPayload struct {
	InitialTime string `json:"initial_time"`
	Duration    string `json:"duration"`
	StartDate   string `json:"start_date,omitempty"`
}

// CalculationResult is the success body of the calculation service.
// Exactly one of the simple, date-range or error shapes is populated.
type CalculationResult struct {
	// Simple shape.
	ResultString   string `json:"result_string,omitempty"`
	CalculatedTime string `json:"calculated_time,omitempty"`
	DaysNumeric    *int   `json:"days_numeric,omitempty"`

	// Date-range shape.
	StartDateTime   string `json:"start_datetime_str,omitempty"`
	EndDateTime     string `json:"end_datetime_str,omitempty"`
	DurationDetails string `json:"duration_details_str,omitempty"`

	Error string `json:"error,omitempty"`
}

// ResultShape tells which of the CalculationResult shapes a body carries.
type ResultShape int

const (
	ShapeNone ResultShape = iota
	ShapeError
	ShapeDateRange
	ShapeSimple
)

// Shape classifies r. An error wins over any data, then the date range, then the simple string.
func (r CalculationResult) Shape() ResultShape {
	switch {
	case r.Error != "":
		return ShapeError
	case r.EndDateTime != "":
		return ShapeDateRange
	case r.ResultString != "":
		return ShapeSimple
	}
	return ShapeNone
}
