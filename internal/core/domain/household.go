package domain

import "fmt"

// ReviewType is the kind of review a household is due for.
type ReviewType string

const (
	ReviewRequired ReviewType = "Required"
	ReviewPeriodic ReviewType = "Periodic"
)

// Valid reports whether t is a known review type.
func (t ReviewType) Valid() bool {
	return t == ReviewRequired || t == ReviewPeriodic
}

// ReviewStatus is the scheduling state of a household review.
type ReviewStatus string

const (
	StatusScheduled ReviewStatus = "Scheduled"
	StatusCompleted ReviewStatus = "Completed"
	StatusOverdue   ReviewStatus = "Overdue"
)

// Valid reports whether s is a known review status.
func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// Segment is the category label assigned to a household. The set of
// labels is owned by the UI; the constants below are the ones it ships
// with and are not enforced.
type Segment string

const (
	SegmentBlack  Segment = "Black"
	SegmentGreen  Segment = "Green"
	SegmentYellow Segment = "Yellow"
	SegmentRed    Segment = "Red"
)

// Person is a member of a household.
type Person struct {
	Name string `json:"name"`
	// DOB is the date of birth as entered by the user; it is not parsed.
	DOB string `json:"dob"`
}

// Household is a reviewed household together with its members.
//
// Date fields are kept as the strings the UI wrote so a load/save cycle
// never reformats them.
type Household struct {
	ID             uint32       `json:"id"`
	Name           string       `json:"household_name"`
	Persons        []Person     `json:"persons"`
	NextReviewDue  string       `json:"next_review_due"`
	ReviewType     ReviewType   `json:"review_type"`
	Score          float64      `json:"auc"`
	Segment        Segment      `json:"segment"`
	LastReviewDate *string      `json:"last_review_date"`
	ReviewStatus   ReviewStatus `json:"review_status"`
	PriorityFlag   string       `json:"priority_flag"`
	AssignedMonth  *string      `json:"assigned_month"`
	Created        string       `json:"created"`
	Updated        string       `json:"updated"`
}

// validate returns the invariant violations of a single household.
func (h *Household) validate() []string {
	var violations []string
	if !h.ReviewType.Valid() {
		violations = append(violations, fmt.Sprintf("household %d: review_type %q is not Required or Periodic", h.ID, h.ReviewType))
	}
	if !h.ReviewStatus.Valid() {
		violations = append(violations, fmt.Sprintf("household %d: review_status %q is not Scheduled, Completed or Overdue", h.ID, h.ReviewStatus))
	}
	return violations
}

// Clone returns a deep copy of the household.
func (h *Household) Clone() Household {
	c := *h
	if h.Persons != nil {
		c.Persons = append([]Person(nil), h.Persons...)
	}
	if h.LastReviewDate != nil {
		v := *h.LastReviewDate
		c.LastReviewDate = &v
	}
	if h.AssignedMonth != nil {
		v := *h.AssignedMonth
		c.AssignedMonth = &v
	}
	return c
}
