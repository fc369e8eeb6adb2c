package datemath

// DateLayout is the yyyy-mm-dd layout the calendar binding stores.
const DateLayout = "2006-01-02"

var weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}
