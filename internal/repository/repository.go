package repository

import (
	"context"
	"errors"
	"feedbacker/internal/db"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")
var ErrFeedbackNotFound error = errors.New("feedback not found")

type BoardRepository struct {
	db Storage
}

func NewBoardRepository(db Storage) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (r *BoardRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Feedback{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BoardRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.InsertRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *BoardRepository) GetUser(ctx context.Context, username string) (User, error) {
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

// DeleteUserWithFeedback removes a user and every feedback row they own in a
// single transaction, so no orphan feedback can survive a partial failure.
func (r *BoardRepository) DeleteUserWithFeedback(ctx context.Context, username string) error {
	err := r.db.Transaction(ctx, func(tx *db.PostgresDB) error {
		if _, err := tx.DeleteBy(ctx, "username", username, &Feedback{}); err != nil {
			return fmt.Errorf("delete user feedback: %w", err)
		}

		deleted, err := tx.DeleteBy(ctx, "username", username, &User{})
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if deleted == 0 {
			return ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user with feedback: %w", err)
	}

	return nil
}

func (r *BoardRepository) CreateFeedback(ctx context.Context, feedback Feedback) (Feedback, error) {
	err := r.db.InsertRecord(ctx, &feedback)
	if err != nil {
		return Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}

	return feedback, nil
}

func (r *BoardRepository) GetFeedback(ctx context.Context, id int64) (Feedback, error) {
	var feedback Feedback

	err := r.db.GetOneBy(ctx, "id", id, &feedback)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Feedback{}, ErrFeedbackNotFound
		}
		return Feedback{}, fmt.Errorf("get feedback by id: %w", err)
	}

	return feedback, nil
}

// UpdateFeedback changes title and content of an existing feedback row. The
// id and owning username are never part of the update set.
func (r *BoardRepository) UpdateFeedback(ctx context.Context, id int64, title, content string) (Feedback, error) {
	feedback, err := r.GetFeedback(ctx, id)
	if err != nil {
		return Feedback{}, err
	}

	err = r.db.UpdateRecord(ctx, &feedback, map[string]any{
		"title":   title,
		"content": content,
	})
	if err != nil {
		return Feedback{}, fmt.Errorf("update feedback: %w", err)
	}

	feedback.Title = title
	feedback.Content = content
	return feedback, nil
}

func (r *BoardRepository) DeleteFeedback(ctx context.Context, id int64) error {
	deleted, err := r.db.DeleteBy(ctx, "id", id, &Feedback{})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if deleted == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

func (r *BoardRepository) ListFeedbackByUser(ctx context.Context, username string) ([]Feedback, error) {
	feedback := []Feedback{}

	err := r.db.GetAllBy(ctx, "username", username, &feedback)
	if err != nil {
		return nil, fmt.Errorf("list feedback by username: %w", err)
	}

	return feedback, nil
}
