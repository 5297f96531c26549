package service

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
)

func (s *Service) ListLibrarians(ctx context.Context, id auth.Identity) ([]model.Librarian, error) {
	if err := authorize(id, auth.ActionViewLibrarians, ""); err != nil {
		return nil, err
	}
	var res []model.Librarian
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		res = tx.Librarians()
		return nil
	})
	return res, err
}

func (s *Service) AddLibrarian(ctx context.Context, id auth.Identity, req model.AddLibrarianRequest) (model.Librarian, error) {
	if err := authorize(id, auth.ActionManageLibrarians, ""); err != nil {
		return model.Librarian{}, err
	}
	if req.LibrarianID == "" || req.Name == "" {
		return model.Librarian{}, errs.InvalidArgument("librarian_id and librarian_name are required")
	}
	l := model.Librarian{LibrarianID: req.LibrarianID, Name: req.Name, Role: string(auth.RoleStaff)}
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		if _, ok := tx.Librarian(req.LibrarianID); ok {
			return errs.Conflict("librarian %s already exists", req.LibrarianID)
		}
		tx.PutLibrarian(l)
		return nil
	})
	if err != nil {
		return model.Librarian{}, err
	}
	return l, nil
}

func (s *Service) RemoveLibrarian(ctx context.Context, id auth.Identity, librarianID string) (model.Librarian, error) {
	if err := authorize(id, auth.ActionManageLibrarians, ""); err != nil {
		return model.Librarian{}, err
	}
	if librarianID == "" {
		return model.Librarian{}, errs.InvalidArgument("librarian_id is required")
	}
	var removed model.Librarian
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		l, ok := tx.Librarian(librarianID)
		if !ok {
			return errs.NotFound("librarian %s not found", librarianID)
		}
		tx.DeleteLibrarian(librarianID)
		removed = l
		return nil
	})
	return removed, err
}
