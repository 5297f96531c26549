package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
)

func (s *Service) ListFines(ctx context.Context, id auth.Identity, studentID string) (model.StudentFines, error) {
	if err := authorize(id, auth.ActionViewFines, studentID); err != nil {
		return model.StudentFines{}, err
	}
	var res model.StudentFines
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(studentID)
		if !ok {
			return errs.NotFound("student %s not found", studentID)
		}
		res = studentFines(st)
		return nil
	})
	return res, err
}

func (s *Service) StudentsWithFines(ctx context.Context, id auth.Identity) ([]model.StudentFines, error) {
	if err := authorize(id, auth.ActionViewAllFines, ""); err != nil {
		return nil, err
	}
	res := make([]model.StudentFines, 0)
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		for _, st := range tx.Students() {
			if f := studentFines(st); len(f.Fines) > 0 {
				res = append(res, f)
			}
		}
		return nil
	})
	return res, err
}

// studentFines lists fined records that are missing or already returned.
func studentFines(st model.Student) model.StudentFines {
	res := model.StudentFines{
		StudentID:   st.StudentID,
		StudentName: st.Name,
		Fines:       make([]model.FineEntry, 0),
	}
	for _, l := range st.Loans {
		if l.Fine <= 0 || l.Status == model.StatusBorrowed {
			continue
		}
		res.Fines = append(res.Fines, model.FineEntry{
			StudentID:   st.StudentID,
			StudentName: st.Name,
			BookID:      l.BookID,
			BookName:    l.BookName,
			Status:      l.Status,
			Fine:        l.Fine,
			WasMissing:  l.WasMissing,
		})
	}
	return res
}

// PayFine spreads amount over fined records in loan order, settling each
// record in full before moving to the next one.
func (s *Service) PayFine(ctx context.Context, id auth.Identity, studentID string, amount int) (model.Payment, error) {
	if err := authorize(id, auth.ActionPayFine, ""); err != nil {
		return model.Payment{}, err
	}

	var res model.Payment
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(studentID)
		if !ok {
			return errs.NotFound("student %s not found", studentID)
		}
		total := st.TotalFine()
		if total <= 0 {
			return errs.NotFound("no fine pending for student %s", studentID)
		}
		if amount <= 0 {
			return errs.InvalidArgument("please provide a valid payment amount")
		}
		if amount > total {
			return errs.InvalidArgument("payment exceeds pending fine, pending fine is %d", total)
		}

		left := amount
		for i := range st.Loans {
			if left == 0 {
				break
			}
			l := &st.Loans[i]
			if l.Fine <= 0 {
				continue
			}
			paid := min(l.Fine, left)
			l.Fine -= paid
			left -= paid
		}
		tx.PutStudent(st)

		res = model.Payment{
			Message:       fmt.Sprintf("Payment successful. Paid %d.", amount),
			StudentID:     st.StudentID,
			StudentName:   st.Name,
			PaidAmount:    amount,
			RemainingFine: st.TotalFine(),
		}
		return nil
	})
	if err != nil {
		return model.Payment{}, err
	}
	s.publish(id, model.EventFinePaid, studentID, "", res.RemainingFine)
	return res, nil
}
