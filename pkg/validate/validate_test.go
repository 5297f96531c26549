package validate_test

import (
	"testing"

	"github.com/Astemirdum/library-management/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	type req struct {
		StudentID string `json:"student_id" validate:"required"`
		Amount    int    `json:"amount,omitempty" validate:"required"`
		Note      string `validate:"required"`
	}
	v := validate.NewCustomValidator()

	require.NoError(t, v.Validate(req{StudentID: "S001", Amount: 10, Note: "x"}))
	require.EqualError(t, v.Validate(req{Amount: 10, Note: "x"}), "student_id is required")
	require.EqualError(t, v.Validate(req{}), "student_id is required, amount is required, Note is required")
}
