package entity

// Certificate is proof of course completion issued by the server.
type Certificate struct {
	ID         string `json:"id"`
	CourseName string `json:"courseName"`
	IssuedDate string `json:"issuedDate"`
	URL        string `json:"url,omitempty"`
}

// InternshipStatus tracks an offer through the student's decision.
type InternshipStatus string

const (
	InternshipPending  InternshipStatus = "pending"
	InternshipAccepted InternshipStatus = "accepted"
	InternshipDeclined InternshipStatus = "declined"
)

// Internship is an offer extended by a mentor to a student.
type Internship struct {
	ID         string           `json:"id"`
	CourseName string           `json:"courseName"`
	Mentor     CourseMentor     `json:"mentor"`
	Duration   int              `json:"duration"` // months
	StartDate  string           `json:"startDate"`
	Status     InternshipStatus `json:"status"`
}
