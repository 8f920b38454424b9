package core

import (
	"context"

	"communify/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	CreateMember(ctx context.Context, member repository.Member) (repository.Member, error)
	ListMembers(ctx context.Context) ([]repository.Member, error)
	CreateAttendance(ctx context.Context, attendance repository.Attendance) (repository.Attendance, error)
}

//counterfeiter:generate -o fake -fake-name CredentialVerifier . CredentialVerifier
type CredentialVerifier interface {
	Verify(stored, presented string) error
}
