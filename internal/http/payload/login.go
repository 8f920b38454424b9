package payload

import (
	"net/http"

	"communify/internal/core"

	"github.com/jellydator/validation"
)

type LoginForm struct {
	Username string
	Password string
}

func LoginFormFromRequest(r *http.Request) LoginForm {
	return LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

func (f LoginForm) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: f.Username,
		Password: f.Password,
	}
}
