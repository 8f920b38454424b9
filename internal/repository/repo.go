package repository

import (
	"context"
	"errors"
	"fmt"

	"communify/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")

const (
	seedUsername = "admin"
	seedPassword = "password123"
)

type CommunityRepository struct {
	db Storage
}

func NewCommunityRepository(db Storage) *CommunityRepository {
	return &CommunityRepository{
		db: db,
	}
}

func (r *CommunityRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Member{}, &Attendance{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SeedAdminUser inserts the default admin account when it does not exist yet.
// Safe to call on every startup.
func (r *CommunityRepository) SeedAdminUser(ctx context.Context) error {
	_, err := r.GetUserByUsername(ctx, seedUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("check seed user: %w", err)
	}

	_, err = r.CreateUser(ctx, seedUsername, seedPassword)
	if err != nil {
		// lost a race against another instance seeding the same row
		if errors.Is(err, ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("seed user: %w", err)
	}

	return nil
}

func (r *CommunityRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *CommunityRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *CommunityRepository) CreateUser(ctx context.Context, username, password string) (User, error) {
	user := User{
		Username: username,
		Password: password,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *CommunityRepository) CreateMember(ctx context.Context, member Member) (Member, error) {
	err := r.db.Insert(ctx, &member)
	if err != nil {
		return Member{}, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (r *CommunityRepository) ListMembers(ctx context.Context) ([]Member, error) {
	var members []Member

	err := r.db.GetAll(ctx, &members)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return members, nil
}

func (r *CommunityRepository) CreateAttendance(ctx context.Context, attendance Attendance) (Attendance, error) {
	err := r.db.Insert(ctx, &attendance)
	if err != nil {
		return Attendance{}, fmt.Errorf("create attendance: %w", err)
	}

	return attendance, nil
}
