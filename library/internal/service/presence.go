package service

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
)

// Enter starts a visit. Entering again overwrites the previous visit.
func (s *Service) Enter(ctx context.Context, studentID string) (model.Presence, error) {
	return s.touch(ctx, studentID, func(st *model.Student) error {
		now := s.now()
		st.InTime = &now
		st.OutTime = nil
		return nil
	})
}

func (s *Service) Exit(ctx context.Context, studentID string) (model.Presence, error) {
	return s.touch(ctx, studentID, func(st *model.Student) error {
		if st.InTime == nil {
			return errs.PreconditionFailed("student %s has not entered yet", st.StudentID)
		}
		now := s.now()
		st.OutTime = &now
		return nil
	})
}

func (s *Service) touch(ctx context.Context, studentID string, fn func(st *model.Student) error) (model.Presence, error) {
	if studentID == "" {
		return model.Presence{}, errs.InvalidArgument("student_id is required")
	}
	var res model.Presence
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(studentID)
		if !ok {
			return errs.NotFound("student %s not found", studentID)
		}
		if err := fn(&st); err != nil {
			return err
		}
		tx.PutStudent(st)
		res = presence(st)
		return nil
	})
	return res, err
}

// PresentStudents lists every student who ever entered, including those
// who have already left.
func (s *Service) PresentStudents(ctx context.Context, id auth.Identity) ([]model.Presence, error) {
	if err := authorize(id, auth.ActionViewPresence, ""); err != nil {
		return nil, err
	}
	res := make([]model.Presence, 0)
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		for _, st := range tx.Students() {
			if st.InTime != nil {
				res = append(res, presence(st))
			}
		}
		return nil
	})
	return res, err
}

func presence(st model.Student) model.Presence {
	return model.Presence{
		StudentID:   st.StudentID,
		StudentName: st.Name,
		InTime:      st.InTime,
		OutTime:     st.OutTime,
	}
}
