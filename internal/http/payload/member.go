package payload

import (
	"net/http"

	"communify/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type MemberForm struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func MemberFormFromRequest(r *http.Request) MemberForm {
	return MemberForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Address: r.PostFormValue("address"),
	}
}

func (f MemberForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Phone, validation.Required),
		validation.Field(&f.Address, validation.Required),
	)
}

func (f MemberForm) ToRecord() core.MemberRecord {
	return core.MemberRecord{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Address: f.Address,
	}
}
