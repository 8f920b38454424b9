package handler

import (
	"context"
	"io"
	"net/http"

	"communify/internal/core"
	"communify/internal/session"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CommunityService . CommunityService
type CommunityService interface {
	Authenticate(ctx context.Context, creds core.Credentials) (core.Account, error)
	AccountByID(ctx context.Context, id uint) (core.Account, error)
	AddMember(ctx context.Context, record core.MemberRecord) (core.MemberRecord, error)
	Members(ctx context.Context) ([]core.MemberRecord, error)
	RecordAttendance(ctx context.Context, record core.AttendanceRecord) (core.AttendanceRecord, error)
}

//counterfeiter:generate -o fake -fake-name Sessions . Sessions
type Sessions interface {
	CurrentUser(r *http.Request) (session.Identity, bool)
	Issue(w http.ResponseWriter, identity session.Identity) error
	Clear(w http.ResponseWriter)
}

//counterfeiter:generate -o fake -fake-name ViewRenderer . ViewRenderer
type ViewRenderer interface {
	Render(w io.Writer, name string, data any) error
}
