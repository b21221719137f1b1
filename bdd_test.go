package signup

import (
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestUserRegistration(t *testing.T) {
	convey.Convey("Given a new user with valid credentials", t, func() {
		users := NewUserRepository()
		notifier := &notifierSpy{}
		svc := NewService(users, notifier, discardLogger())
		req := registerUserRequest{"user1", "angel@angel.com", "passworD1"}

		convey.Convey("When the user registers", func() {
			id, err := svc.Register(req)

			convey.So(err, convey.ShouldBeNil)
			convey.So(IsValidID(string(id)), convey.ShouldBeTrue)

			convey.Convey("Then an inactive account with an activation token is stored", func() {
				user, err := users.FindByEmail(req.Email)

				convey.So(err, convey.ShouldBeNil)
				convey.So(user.ID, convey.ShouldEqual, id)
				convey.So(user.Inactive, convey.ShouldBeTrue)
				convey.So(user.ActivationToken, convey.ShouldNotBeEmpty)
				convey.So(user.PasswordHash, convey.ShouldNotEqual, req.Password)
			})

			convey.Convey("And the activation email carries the stored token", func() {
				user, _ := users.FindByEmail(req.Email)

				convey.So(notifier.email, convey.ShouldEqual, req.Email)
				convey.So(notifier.token, convey.ShouldEqual, user.ActivationToken)
			})

			convey.Convey("And registering the same email again fails", func() {
				_, err := svc.Register(registerUserRequest{"user2", req.Email, "passworD2"})

				var ve *ValidationError
				convey.So(errors.As(err, &ve), convey.ShouldBeTrue)
				convey.So(ve.Fields["email"], convey.ShouldEqual, CodeEmailInUse)
			})
		})
	})
}

func TestUserRegistrationWithFailingEmailTransport(t *testing.T) {
	convey.Convey("Given an email transport that is down", t, func() {
		users := NewUserRepository()
		notifier := &notifierSpy{err: errors.New("smtp unreachable")}
		svc := NewService(users, notifier, discardLogger())

		convey.Convey("When a user with valid credentials registers", func() {
			_, err := svc.Register(registerUserRequest{"user1", "angel@angel.com", "passworD1"})

			convey.Convey("Then the registration fails with a notification error", func() {
				convey.So(errors.Is(err, ErrNotification), convey.ShouldBeTrue)
			})

			convey.Convey("And no account remains in the repository", func() {
				_, err := users.FindByEmail("angel@angel.com")
				convey.So(err, convey.ShouldEqual, ErrNotFound)
			})
		})
	})
}
