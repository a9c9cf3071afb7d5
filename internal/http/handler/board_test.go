package handler_test

import (
	"bytes"
	"errors"
	"feedbacker/internal/core"
	"feedbacker/internal/http/handler"
	"feedbacker/internal/http/handler/fake"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("BoardHandler", func() {
	var (
		fakeService   *fake.BoardService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger

		bh *handler.BoardHandler

		w       *httptest.ResponseRecorder
		req     *http.Request
		fakeErr error
	)

	BeforeEach(func() {
		fakeService = new(fake.BoardService)
		fakeValidator = new(fake.RequestValidator)
		fakeLogger = zap.NewNop().Sugar()

		bh = handler.NewBoardHandler(fakeLogger, fakeValidator, fakeService)

		w = httptest.NewRecorder()
		fakeErr = errors.New("fake error")
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/board/register", bytes.NewBufferString(`{}`))
		})

		JustBeforeEach(func() {
			bh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.RegisterReturns("signed.token", core.UserRecord{Username: "alice"}, nil)
			})

			It("should return 201 Created with a token", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("signed.token"))
				Expect(w.Body.String()).To(ContainSubstring("alice"))
				Expect(fakeService.RegisterCallCount()).To(Equal(1))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.RegisterReturns("", core.UserRecord{}, core.ErrUserTaken)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUserTaken.Error()))
			})
		})

		When("registration fails unexpectedly", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.RegisterReturns("", core.UserRecord{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/board/login", bytes.NewBufferString(`{}`))
		})

		JustBeforeEach(func() {
			bh.HandleLogin(w, req)
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.AuthenticateReturns("signed.token", nil)
			})

			It("should return 200 OK with a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("signed.token"))
			})
		})

		When("credentials are invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.AuthenticateReturns("", core.ErrInvalidCredentials)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInvalidCredentials.Error()))
			})
		})
	})

	Describe("HandleGetUserPage", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/board/users/alice", nil)
			req.SetPathValue("username", "alice")
			req.Header.Set("AUTH_TOKEN", "some.token")
		})

		JustBeforeEach(func() {
			bh.HandleGetUserPage(w, req)
		})

		When("the session owns the page", func() {
			BeforeEach(func() {
				fakeService.SessionIdentityReturns("alice")
				fakeService.UserPageReturns(core.UserPage{
					User: core.UserRecord{Username: "alice"},
					Feedback: []core.FeedbackRecord{
						{ID: 1, Title: "Hi", Username: "alice"},
					},
				}, nil)
			})

			It("should return 200 OK with the page", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("alice"))
				Expect(w.Body.String()).To(ContainSubstring("Hi"))

				_, session, username := fakeService.UserPageArgsForCall(0)
				Expect(session).To(Equal("alice"))
				Expect(username).To(Equal("alice"))
			})
		})

		When("access is denied", func() {
			BeforeEach(func() {
				fakeService.SessionIdentityReturns("")
				fakeService.UserPageReturns(core.UserPage{}, core.ErrLoginRequired)
			})

			It("should return 401 with the login entry point", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("/board/login"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.SessionIdentityReturns("alice")
				fakeService.UserPageReturns(core.UserPage{}, core.ErrUserNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleDeleteUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/board/users/alice", nil)
			req.SetPathValue("username", "alice")
			req.Header.Set("AUTH_TOKEN", "some.token")
		})

		JustBeforeEach(func() {
			bh.HandleDeleteUser(w, req)
		})

		When("the session deletes its own account", func() {
			BeforeEach(func() {
				fakeService.SessionIdentityReturns("alice")
				fakeService.DeleteUserReturns(nil)
			})

			It("should return 200 OK", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, session, username := fakeService.DeleteUserArgsForCall(0)
				Expect(session).To(Equal("alice"))
				Expect(username).To(Equal("alice"))
			})
		})

		When("access is denied", func() {
			BeforeEach(func() {
				fakeService.SessionIdentityReturns("bob")
				fakeService.DeleteUserReturns(core.ErrLoginRequired)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleAddFeedback", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/board/users/alice/feedback", bytes.NewBufferString(`{}`))
			req.SetPathValue("username", "alice")
			req.Header.Set("AUTH_TOKEN", "some.token")
		})

		JustBeforeEach(func() {
			bh.HandleAddFeedback(w, req)
		})

		When("the feedback is created", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.SessionIdentityReturns("alice")
				fakeService.CreateFeedbackReturns(core.FeedbackRecord{
					ID:       7,
					Title:    "Hi",
					Username: "alice",
				}, nil)
			})

			It("should return 201 Created with the feedback", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring(`"id":7`))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateFeedbackCallCount()).To(Equal(0))
			})
		})

		When("access is denied", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.SessionIdentityReturns("")
				fakeService.CreateFeedbackReturns(core.FeedbackRecord{}, core.ErrLoginRequired)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleGetFeedback", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/board/feedback/7", nil)
			req.SetPathValue("id", "7")
		})

		JustBeforeEach(func() {
			bh.HandleGetFeedback(w, req)
		})

		When("the feedback exists", func() {
			BeforeEach(func() {
				fakeService.GetFeedbackReturns(core.FeedbackRecord{
					ID:       7,
					Title:    "Hi",
					Username: "alice",
				}, nil)
			})

			It("should return 200 OK with the feedback", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("alice"))

				_, id := fakeService.GetFeedbackArgsForCall(0)
				Expect(id).To(Equal(int64(7)))
			})
		})

		When("the feedback does not exist", func() {
			BeforeEach(func() {
				fakeService.GetFeedbackReturns(core.FeedbackRecord{}, core.ErrFeedbackNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not an integer", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "seven")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetFeedbackCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleEditFeedback", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("PUT", "/board/feedback/7", bytes.NewBufferString(`{}`))
			req.SetPathValue("id", "7")
			req.Header.Set("AUTH_TOKEN", "some.token")
		})

		JustBeforeEach(func() {
			bh.HandleEditFeedback(w, req)
		})

		When("the edit succeeds", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.SessionIdentityReturns("alice")
				fakeService.UpdateFeedbackReturns(core.FeedbackRecord{
					ID:       7,
					Title:    "New title",
					Username: "alice",
				}, nil)
			})

			It("should return 200 OK with the updated feedback", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("New title"))

				_, session, id, msg := fakeService.UpdateFeedbackArgsForCall(0)
				Expect(session).To(Equal("alice"))
				Expect(id).To(Equal(int64(7)))
				Expect(msg).To(Equal(core.FeedbackMessage{}))
			})
		})

		When("the feedback does not exist", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.UpdateFeedbackReturns(core.FeedbackRecord{}, core.ErrFeedbackNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("access is denied", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(nil)
				fakeService.UpdateFeedbackReturns(core.FeedbackRecord{}, core.ErrLoginRequired)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleDeleteFeedback", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/board/feedback/7", nil)
			req.SetPathValue("id", "7")
			req.Header.Set("AUTH_TOKEN", "some.token")
		})

		JustBeforeEach(func() {
			bh.HandleDeleteFeedback(w, req)
		})

		When("the delete succeeds", func() {
			BeforeEach(func() {
				fakeService.SessionIdentityReturns("alice")
				fakeService.DeleteFeedbackReturns(nil)
			})

			It("should return 200 OK", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, session, id := fakeService.DeleteFeedbackArgsForCall(0)
				Expect(session).To(Equal("alice"))
				Expect(id).To(Equal(int64(7)))
			})
		})

		When("the feedback does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteFeedbackReturns(core.ErrFeedbackNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
