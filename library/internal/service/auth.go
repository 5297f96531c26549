package service

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/pkg/errors"
)

// Login checks staff credentials first, then student ids.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return model.LoginResponse{}, errs.InvalidArgument("username and password are required")
	}
	var (
		hash string
		role auth.Role
	)
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		if u, ok := tx.User(req.Username); ok {
			hash, role = u.Password, auth.Role(u.Role)
			return nil
		}
		if st, ok := tx.Student(req.Username); ok {
			hash, role = st.Password, auth.RoleStudent
			return nil
		}
		return errs.NotFound("user %s not found", req.Username)
	})
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !s.hasher.Compare(hash, req.Password) {
		return model.LoginResponse{}, errs.Unauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.Issue(req.Username, role)
	if err != nil {
		return model.LoginResponse{}, errors.Wrap(err, "issue token")
	}
	return model.LoginResponse{
		AccessToken: token,
		Role:        string(role),
		ExpiresIn:   int(expiresAt.Sub(s.now()).Seconds()),
	}, nil
}
