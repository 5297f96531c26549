package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/pkg/errors"
)

const maskedPassword = "********"

func (s *Service) ListMembers(ctx context.Context, id auth.Identity) ([]model.Member, error) {
	if err := authorize(id, auth.ActionViewMembers, ""); err != nil {
		return nil, err
	}
	var members []model.Member
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		students := tx.Students()
		members = make([]model.Member, 0, len(students))
		for _, st := range students {
			members = append(members, model.Member{StudentID: st.StudentID, Name: st.Name})
		}
		return nil
	})
	return members, err
}

func (s *Service) Register(ctx context.Context, id auth.Identity, req model.RegisterRequest) (model.RegisterResponse, error) {
	if err := authorize(id, auth.ActionRegisterMember, ""); err != nil {
		return model.RegisterResponse{}, err
	}
	if req.StudentID == "" || req.Name == "" || req.Password == "" {
		return model.RegisterResponse{}, errs.InvalidArgument("student_id, student_name and password are required")
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.RegisterResponse{}, errors.Wrap(err, "hash password")
	}

	err = s.repo.Update(ctx, func(tx repository.Tx) error {
		if _, ok := tx.Student(req.StudentID); ok {
			return errs.Conflict("student %s already exists", req.StudentID)
		}
		// logins try the user table first
		if _, ok := tx.User(req.StudentID); ok {
			return errs.Conflict("%s is a reserved username", req.StudentID)
		}
		tx.PutStudent(model.Student{
			StudentID: req.StudentID,
			Name:      req.Name,
			Password:  hash,
			Loans:     []model.Loan{},
		})
		return nil
	})
	if err != nil {
		return model.RegisterResponse{}, err
	}
	s.publish(id, model.EventStudentRegistered, req.StudentID, "", 0)

	return model.RegisterResponse{
		Message: fmt.Sprintf("Student %s registered successfully", req.Name),
		Student: model.Registered{
			StudentID:     req.StudentID,
			Name:          req.Name,
			BorrowedBooks: []model.Loan{},
			Password:      maskedPassword,
		},
	}, nil
}

// RemoveMember deletes a student with no outstanding fine. Admins remove
// anyone; a student removes themself after confirming the password.
// An outstanding fine is reported before the password is checked.
func (s *Service) RemoveMember(ctx context.Context, id auth.Identity, req model.RemoveMemberRequest) (model.RemoveMemberResponse, error) {
	if req.StudentID == "" {
		return model.RemoveMemberResponse{}, errs.InvalidArgument("student_id is required")
	}
	if err := authorize(id, auth.ActionRemoveMember, req.StudentID); err != nil {
		return model.RemoveMemberResponse{}, err
	}
	byAdmin := id.Role == auth.RoleAdmin

	outstanding := func(st model.Student) error {
		fine := st.TotalFine()
		if fine == 0 {
			return nil
		}
		if byAdmin {
			return errs.PreconditionFailed("admin cannot remove student %s because pending fine is %d", st.StudentID, fine)
		}
		return errs.PreconditionFailed("cannot remove student %s, pending fine: %d, please contact admin", st.StudentID, fine)
	}

	var hash string
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(req.StudentID)
		if !ok {
			return errs.NotFound("student %s not found", req.StudentID)
		}
		hash = st.Password
		return outstanding(st)
	})
	if err != nil {
		return model.RemoveMemberResponse{}, err
	}
	// bcrypt runs outside the write lock
	if !byAdmin && !s.hasher.Compare(hash, req.Password) {
		return model.RemoveMemberResponse{}, errs.Forbidden("password incorrect")
	}

	err = s.repo.Update(ctx, func(tx repository.Tx) error {
		st, ok := tx.Student(req.StudentID)
		if !ok {
			return errs.NotFound("student %s not found", req.StudentID)
		}
		if err := outstanding(st); err != nil {
			return err
		}
		tx.DeleteStudent(req.StudentID)
		return nil
	})
	if err != nil {
		return model.RemoveMemberResponse{}, err
	}
	s.publish(id, model.EventStudentRemoved, req.StudentID, "", 0)

	msg := fmt.Sprintf("Student %s membership declined successfully (no pending fine)", req.StudentID)
	if byAdmin {
		msg = fmt.Sprintf("Student %s membership declined by admin (no pending fine)", req.StudentID)
	}
	return model.RemoveMemberResponse{Message: msg}, nil
}
