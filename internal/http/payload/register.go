package payload

import (
	"feedbacker/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 20)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 30)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, 50)),
		validation.Field(&r.FirstName, validation.Required, validation.Length(0, 30)),
		validation.Field(&r.LastName, validation.Required, validation.Length(0, 30)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username:  r.Username,
		Password:  r.Password,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
