package repository_test

import (
	"context"
	"errors"
	"feedbacker/internal/db"
	"feedbacker/internal/repository"
	"feedbacker/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoardRepository", func() {
	var (
		repo        *repository.BoardRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewBoardRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate both tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Feedback{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				Username:  "alice",
				Password:  "$2a$10$hash",
				Email:     "a@x.com",
				FirstName: "A",
				LastName:  "L",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertRecordReturns(nil)
			})

			It("should insert the user record", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.InsertRecordCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertRecordArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(record.(*repository.User).Username).To(Equal("alice"))
			})
		})

		When("the username or email is already present", func() {
			BeforeEach(func() {
				fakeStorage.InsertRecordReturns(db.ErrDuplicate)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertRecordReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUser(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					usr := entity.(*repository.User)
					*usr = repository.User{Username: "alice", Email: "a@x.com"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("DeleteUserWithFeedback", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteUserWithFeedback(ctx, "alice")
		})

		When("the transaction succeeds", func() {
			BeforeEach(func() {
				fakeStorage.TransactionReturns(nil)
			})

			It("should run a single transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.TransactionCallCount()).To(Equal(1))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.TransactionReturns(repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the transaction fails", func() {
			BeforeEach(func() {
				fakeStorage.TransactionReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateFeedback", func() {
		var (
			feedback repository.Feedback
			created  repository.Feedback
			err      error
		)

		BeforeEach(func() {
			feedback = repository.Feedback{
				Title:    "Hi",
				Content:  "Hello",
				Username: "alice",
			}
		})

		JustBeforeEach(func() {
			created, err = repo.CreateFeedback(ctx, feedback)
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertRecordStub = func(ctx context.Context, record any) error {
					fb := record.(*repository.Feedback)
					fb.ID = 7 // database assigns the surrogate key
					return nil
				}
			})

			It("should return the feedback with its assigned id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(Equal(int64(7)))
				Expect(created.Username).To(Equal("alice"))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertRecordReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetFeedback", func() {
		var (
			feedback repository.Feedback
			err      error
		)

		JustBeforeEach(func() {
			feedback, err = repo.GetFeedback(ctx, 7)
		})

		When("the feedback exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					fb := entity.(*repository.Feedback)
					*fb = repository.Feedback{ID: 7, Title: "Hi", Username: "alice"}
					return nil
				}
			})

			It("should return the feedback", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback.ID).To(Equal(int64(7)))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(int64(7)))
			})
		})

		When("the feedback does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return feedback not found error", func() {
				Expect(err).To(MatchError(repository.ErrFeedbackNotFound))
			})
		})
	})

	Describe("UpdateFeedback", func() {
		var (
			updated repository.Feedback
			err     error
		)

		JustBeforeEach(func() {
			updated, err = repo.UpdateFeedback(ctx, 7, "New title", "New content")
		})

		When("the feedback exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					fb := entity.(*repository.Feedback)
					*fb = repository.Feedback{ID: 7, Title: "Hi", Content: "Hello", Username: "alice"}
					return nil
				}
				fakeStorage.UpdateRecordReturns(nil)
			})

			It("should update only title and content", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpdateRecordCallCount()).To(Equal(1))
				_, _, updates := fakeStorage.UpdateRecordArgsForCall(0)
				Expect(updates).To(Equal(map[string]any{
					"title":   "New title",
					"content": "New content",
				}))
			})

			It("should keep id and owner untouched", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.ID).To(Equal(int64(7)))
				Expect(updated.Username).To(Equal("alice"))
				Expect(updated.Title).To(Equal("New title"))
			})
		})

		When("the feedback does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return feedback not found error", func() {
				Expect(err).To(MatchError(repository.ErrFeedbackNotFound))
				Expect(fakeStorage.UpdateRecordCallCount()).To(Equal(0))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					fb := entity.(*repository.Feedback)
					*fb = repository.Feedback{ID: 7, Username: "alice"}
					return nil
				}
				fakeStorage.UpdateRecordReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteFeedback", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteFeedback(ctx, 7)
		})

		When("the feedback exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(1, nil)
			})

			It("should delete the row", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.DeleteByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(int64(7)))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, nil)
			})

			It("should return feedback not found error", func() {
				Expect(err).To(MatchError(repository.ErrFeedbackNotFound))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListFeedbackByUser", func() {
		var (
			feedback []repository.Feedback
			err      error
		)

		JustBeforeEach(func() {
			feedback, err = repo.ListFeedbackByUser(ctx, "alice")
		})

		When("the user has feedback", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, entity any) error {
					fbs := entity.(*[]repository.Feedback)
					*fbs = []repository.Feedback{
						{ID: 1, Username: "alice"},
						{ID: 2, Username: "alice"},
					}
					return nil
				}
			})

			It("should return all owned rows", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback).To(HaveLen(2))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
