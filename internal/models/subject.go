package models

// SubjectColors is the fixed palette a new subject's color is drawn from.
// The values are style tokens consumed verbatim by the web client.
var SubjectColors = []string{
	"bg-red-500", "bg-blue-500", "bg-green-500", "bg-yellow-500",
	"bg-purple-500", "bg-pink-500", "bg-indigo-500", "bg-teal-500",
}

// Subject represents a course the student is enrolled in.
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Teacher     string `json:"teacher,omitempty"`
	ResourceURL string `json:"resourceUrl,omitempty"`
	Color       string `json:"color,omitempty"`
}
