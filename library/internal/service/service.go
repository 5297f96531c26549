package service

import (
	"time"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/auth"
	"go.uber.org/zap"
)

// SystemIdentity is the caller used by background jobs.
var SystemIdentity = auth.Identity{Subject: "system", Role: auth.RoleStaff}

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

type TokenIssuer interface {
	Issue(username string, role auth.Role) (string, time.Time, error)
}

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	hasher auth.PasswordHasher
	tokens TokenIssuer

	events Enqueuer
	topic  string
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithEnqueuer(q Enqueuer, topic string) Option {
	return func(s *Service) {
		s.events = q
		s.topic = topic
	}
}

func NewService(repo repository.Repository, hasher auth.PasswordHasher, tokens TokenIssuer, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.NewDate(s.now())
}

func authorize(id auth.Identity, action auth.Action, owner string) error {
	if auth.Authorize(id, action, owner) {
		return nil
	}
	if id.IsAnonymous() {
		return errs.Unauthorized("authentication required")
	}
	return errs.Forbidden("access denied")
}

// findLoan returns the index of the first active loan of bookID, or of the
// last finished one when none is active. -1 means the student never had it.
func findLoan(st model.Student, bookID string) int {
	idx := -1
	for i := range st.Loans {
		if st.Loans[i].BookID != bookID {
			continue
		}
		if st.Loans[i].Status.Active() {
			return i
		}
		idx = i
	}
	return idx
}
