package payload

import (
	"net/http"
	"strconv"
	"time"

	"communify/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

const attendanceDateLayout = "2006-01-02"

type AttendanceForm struct {
	MemberID string
	Date     string
}

func AttendanceFormFromRequest(r *http.Request) AttendanceForm {
	return AttendanceForm{
		MemberID: r.PostFormValue("member_id"),
		Date:     r.PostFormValue("date"),
	}
}

func (f AttendanceForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.MemberID, validation.Required, is.Digit),
		validation.Field(&f.Date, validation.Required, validation.Date(attendanceDateLayout)),
	)
}

// ToRecord converts the validated form. Call Validate first.
func (f AttendanceForm) ToRecord() (core.AttendanceRecord, error) {
	memberID, err := strconv.ParseUint(f.MemberID, 10, 64)
	if err != nil {
		return core.AttendanceRecord{}, err
	}

	date, err := time.Parse(attendanceDateLayout, f.Date)
	if err != nil {
		return core.AttendanceRecord{}, err
	}

	return core.AttendanceRecord{
		MemberID: uint(memberID),
		Date:     date,
	}, nil
}
