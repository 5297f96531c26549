package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Parallel()
	d := NewDate(time.Date(2024, 3, 1, 17, 45, 0, 0, time.UTC))
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d.Time)
	require.Equal(t, 7, d.AddDays(7).DaysSince(d))
	require.Equal(t, 29, NewDate(time.Date(2024, 3, 30, 1, 0, 0, 0, time.UTC)).DaysSince(d))

	b, err := json.Marshal(d.AddDays(7))
	require.NoError(t, err)
	require.Equal(t, `"2024-03-08"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, 7, back.DaysSince(d))

	b, err = json.Marshal(Loan{BookID: "B101", IssueDate: d, DueDate: d.AddDays(7), Status: StatusBorrowed})
	require.NoError(t, err)
	require.Contains(t, string(b), `"date_of_issuing":"2024-03-01","date_of_returning":"2024-03-08"`)
}

func TestStudent(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := Student{
		StudentID: "S001",
		InTime:    &in,
		Loans: []Loan{
			{BookID: "B101", Status: StatusBorrowed},
			{BookID: "B102", Status: StatusMissing, Fine: MissingFine},
			{BookID: "B103", Status: StatusReturned, Fine: 100},
		},
	}
	require.True(t, s.Inside())
	require.Equal(t, 2, s.ActiveLoans())
	require.Equal(t, 600, s.TotalFine())

	c := s.Clone()
	c.Loans[0].Status = StatusReturned
	*c.InTime = in.Add(time.Hour)
	require.Equal(t, StatusBorrowed, s.Loans[0].Status)
	require.Equal(t, in, *s.InTime)

	out := in.Add(time.Hour)
	s.OutTime = &out
	require.False(t, s.Inside())
}
