package service

import (
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// publish is best effort: the state change is already committed.
func (s *Service) publish(actor auth.Identity, typ model.EventType, studentID, bookID string, fine int) {
	if s.events == nil {
		return
	}
	ev := model.LoanEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		StudentID:  studentID,
		BookID:     bookID,
		Fine:       fine,
		Actor:      actor.Subject,
		OccurredAt: s.now(),
	}
	if err := s.events.Enqueue(s.topic, ev); err != nil {
		s.log.Warn("publish event",
			zap.String("type", string(typ)),
			zap.String("student_id", studentID),
			zap.Error(err))
	}
}
