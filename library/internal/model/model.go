package model

import (
	"strings"
	"time"
)

const (
	MaxActiveLoans   = 3
	LoanPeriodDays   = 7
	OverdueAfterDays = 15
	MissingFine      = 500
	ReturnedLostFine = 250
)

type Availability string

const (
	AvailabilityYes Availability = "Yes"
	AvailabilityNo  Availability = "No"
)

type Status string

const (
	StatusBorrowed Status = "Borrowed"
	StatusMissing  Status = "Missing"
	StatusReturned Status = "Returned"
)

// Active loans count towards the borrowing limit.
func (s Status) Active() bool {
	return s == StatusBorrowed || s == StatusMissing
}

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// DaysSince counts calendar days from earlier to d.
func (d Date) DaysSince(earlier Date) int {
	y1, m1, d1 := earlier.Date()
	y2, m2, d2 := d.Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

type Book struct {
	BookID    string       `json:"book_id" yaml:"id"`
	Name      string       `json:"book_name" yaml:"name"`
	Available Availability `json:"available" yaml:"available"`
}

func (b Book) IsAvailable() bool {
	return b.Available == AvailabilityYes
}

type Librarian struct {
	LibrarianID string `json:"librarian_id" yaml:"id"`
	Name        string `json:"librarian_name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
}

// User is an entry of the static admin/staff credential table.
type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type Loan struct {
	BookID     string `json:"book_id"`
	BookName   string `json:"book_name"`
	IssuedBy   string `json:"issued_by"`
	IssueDate  Date   `json:"date_of_issuing"`
	DueDate    Date   `json:"date_of_returning"`
	Fine       int    `json:"fine"`
	Status     Status `json:"status"`
	WasMissing bool   `json:"was_missing,omitempty"`
}

type Student struct {
	StudentID string     `json:"student_id" yaml:"id"`
	Name      string     `json:"student_name" yaml:"name"`
	Password  string     `json:"-" yaml:"password"`
	InTime    *time.Time `json:"in_time" yaml:"-"`
	OutTime   *time.Time `json:"out_time" yaml:"-"`
	Loans     []Loan     `json:"borrowed_books" yaml:"-"`
}

// Inside reports whether the student entered the library and has not left.
func (s Student) Inside() bool {
	return s.InTime != nil && s.OutTime == nil
}

func (s Student) ActiveLoans() int {
	n := 0
	for i := range s.Loans {
		if s.Loans[i].Status.Active() {
			n++
		}
	}
	return n
}

// TotalFine sums fines over all loan records regardless of status.
func (s Student) TotalFine() int {
	total := 0
	for i := range s.Loans {
		total += s.Loans[i].Fine
	}
	return total
}

// Clone deep-copies loans and presence timestamps.
func (s Student) Clone() Student {
	c := s
	if s.InTime != nil {
		t := *s.InTime
		c.InTime = &t
	}
	if s.OutTime != nil {
		t := *s.OutTime
		c.OutTime = &t
	}
	if s.Loans != nil {
		c.Loans = make([]Loan, len(s.Loans))
		copy(c.Loans, s.Loans)
	}
	return c
}
