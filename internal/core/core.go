package core

import (
	"context"
	"errors"
	"fmt"

	"communify/internal/repository"

	"go.uber.org/zap"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")

// Community implements the application operations behind the web handlers.
type Community struct {
	logs     *zap.SugaredLogger
	repo     Repository
	verifier CredentialVerifier
}

func NewCommunity(logger *zap.SugaredLogger, repo Repository, verifier CredentialVerifier) *Community {
	return &Community{
		logs:     logger,
		repo:     repo,
		verifier: verifier,
	}
}

// Authenticate checks the provided credentials against the user store and
// returns the matching account. Callers must not expose to the client
// whether the username or the password was wrong.
func (c *Community) Authenticate(ctx context.Context, creds Credentials) (Account, error) {
	user, err := c.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Account{}, ErrUserNotFound
		}
		return Account{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = c.verifier.Verify(user.Password, creds.Password); err != nil {
		return Account{}, ErrIncorrectPassword
	}

	c.logs.Infow("user authenticated", "username", user.Username)

	return Account{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// AccountByID resolves a session identity back to a stored account.
func (c *Community) AccountByID(ctx context.Context, id uint) (Account, error) {
	user, err := c.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Account{}, ErrUserNotFound
		}
		return Account{}, fmt.Errorf("get user by id: %w", err)
	}

	return Account{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (c *Community) AddMember(ctx context.Context, record MemberRecord) (MemberRecord, error) {
	member, err := c.repo.CreateMember(ctx, repository.Member{
		Name:    record.Name,
		Email:   record.Email,
		Phone:   record.Phone,
		Address: record.Address,
	})
	if err != nil {
		return MemberRecord{}, fmt.Errorf("create member: %w", err)
	}

	c.logs.Infow("member added", "member_id", member.ID, "name", member.Name)

	record.ID = member.ID
	return record, nil
}

func (c *Community) Members(ctx context.Context) ([]MemberRecord, error) {
	members, err := c.repo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	records := make([]MemberRecord, len(members))
	for i, m := range members {
		records[i] = MemberRecord{
			ID:      m.ID,
			Name:    m.Name,
			Email:   m.Email,
			Phone:   m.Phone,
			Address: m.Address,
		}
	}

	return records, nil
}

func (c *Community) RecordAttendance(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error) {
	attendance, err := c.repo.CreateAttendance(ctx, repository.Attendance{
		MemberID: record.MemberID,
		Date:     record.Date,
	})
	if err != nil {
		return AttendanceRecord{}, fmt.Errorf("create attendance: %w", err)
	}

	c.logs.Infow("attendance recorded", "attendance_id", attendance.ID, "member_id", attendance.MemberID)

	record.ID = attendance.ID
	return record, nil
}
