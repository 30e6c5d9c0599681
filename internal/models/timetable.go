package models

// Weekday enumerates timetable days in display order.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all days in week order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the position of the day within the week, or -1 for an
// unknown value. Used as the primary timetable sort key.
func (d Weekday) Index() int {
	for i, day := range Weekdays {
		if day == d {
			return i
		}
	}
	return -1
}

// Valid reports whether the day is one of the seven known values.
func (d Weekday) Valid() bool {
	return d.Index() >= 0
}

// TimetableEntry represents one scheduled block in the weekly timetable.
// Times are "HH:MM" strings; SubjectID references the subjects namespace and
// may dangle after a subject is deleted.
type TimetableEntry struct {
	ID        string  `json:"id"`
	Day       Weekday `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	SubjectID string  `json:"subjectId"`
	Location  string  `json:"location,omitempty"`
}
