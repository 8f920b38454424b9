package core_test

import (
	"context"
	"errors"
	"time"

	"communify/internal/core"
	"communify/internal/core/fake"
	"communify/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Community", func() {
	var (
		fakeRepo     *fake.Repository
		fakeVerifier *fake.CredentialVerifier
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		community *core.Community

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeVerifier = new(fake.CredentialVerifier)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		community = core.NewCommunity(fakeLogger, fakeRepo, fakeVerifier)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			creds   core.Credentials
			account core.Account
			err     error
		)

		BeforeEach(func() {
			creds = core.Credentials{
				Username: "admin",
				Password: "password123",
			}
		})

		JustBeforeEach(func() {
			account, err = community.Authenticate(ctx, creds)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:       7,
					Username: "admin",
					Password: "password123",
				}, nil)
				fakeVerifier.VerifyReturns(nil)
			})

			It("should return the account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(account.ID).To(Equal(uint(7)))
				Expect(account.Username).To(Equal("admin"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal("admin"))

				Expect(fakeVerifier.VerifyCallCount()).To(Equal(1))
				stored, presented := fakeVerifier.VerifyArgsForCall(0)
				Expect(stored).To(Equal("password123"))
				Expect(presented).To(Equal("password123"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound without verifying anything", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeVerifier.VerifyCallCount()).To(Equal(0))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:       7,
					Username: "admin",
					Password: "password123",
				}, nil)
				fakeVerifier.VerifyReturns(core.ErrIncorrectPassword)
			})

			It("should return ErrIncorrectPassword", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(account).To(Equal(core.Account{}))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(ContainSubstring("get user from db")))
			})
		})
	})

	Describe("AccountByID", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{
					ID:       7,
					Username: "admin",
				}, nil)
			})

			It("should return the account", func() {
				account, err := community.AccountByID(ctx, 7)
				Expect(err).NotTo(HaveOccurred())
				Expect(account.Username).To(Equal("admin"))
			})
		})

		When("the user is gone", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := community.AccountByID(ctx, 42)
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("AddMember", func() {
		When("the repository succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateMemberReturns(repository.Member{
					ID:    3,
					Name:  "Ana",
					Email: "ana@example.com",
				}, nil)
			})

			It("should return the record with its id", func() {
				record, err := community.AddMember(ctx, core.MemberRecord{
					Name:    "Ana",
					Email:   "ana@example.com",
					Phone:   "555-0101",
					Address: "1 Main St",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(3)))

				Expect(fakeRepo.CreateMemberCallCount()).To(Equal(1))
				_, member := fakeRepo.CreateMemberArgsForCall(0)
				Expect(member.Name).To(Equal("Ana"))
				Expect(member.Phone).To(Equal("555-0101"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateMemberReturns(repository.Member{}, fakeErr)
			})

			It("should wrap the error", func() {
				_, err := community.AddMember(ctx, core.MemberRecord{Name: "Ana"})
				Expect(err).To(MatchError(ContainSubstring("create member")))
			})
		})
	})

	Describe("Members", func() {
		BeforeEach(func() {
			fakeRepo.ListMembersReturns([]repository.Member{
				{ID: 1, Name: "Ana"},
				{ID: 2, Name: "Boris"},
			}, nil)
		})

		It("should return all member records", func() {
			members, err := community.Members(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(2))
			Expect(members[0].Name).To(Equal("Ana"))
			Expect(members[1].ID).To(Equal(uint(2)))
		})
	})

	Describe("RecordAttendance", func() {
		var date time.Time

		BeforeEach(func() {
			date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
			fakeRepo.CreateAttendanceReturns(repository.Attendance{
				ID:       9,
				MemberID: 3,
				Date:     date,
			}, nil)
		})

		It("should return the record with its id", func() {
			record, err := community.RecordAttendance(ctx, core.AttendanceRecord{
				MemberID: 3,
				Date:     date,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(uint(9)))

			Expect(fakeRepo.CreateAttendanceCallCount()).To(Equal(1))
			_, attendance := fakeRepo.CreateAttendanceArgsForCall(0)
			Expect(attendance.MemberID).To(Equal(uint(3)))
			Expect(attendance.Date).To(Equal(date))
		})
	})
})
