package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/studysphere/server/internal/domain"
)

var validate = validator.New()

// Validate runs struct-tag validation and maps the first failure onto a
// field-level domain error.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return domain.ErrInvalidField(fe.Field(), fe.Tag())
	}
	return domain.ErrInternal(err)
}

type ApproveSessionRequest struct {
	RegistrationFee float64 `json:"registrationFee" validate:"gte=0"`
}

type RejectSessionRequest struct {
	RejectionReason string `json:"rejectionReason"`
	Feedback        string `json:"feedback"`
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student tutor admin"`
}

type UpdateNoteRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type UpdateMaterialRequest struct {
	Link  string `json:"link" validate:"required"`
	Image string `json:"image"`
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
