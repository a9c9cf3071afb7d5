package core

import (
	"context"
	"errors"
	"feedbacker/internal/repository"
	tokenIssuer "feedbacker/pkg/jwt"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password,
// so callers cannot tell the two apart and enumerate accounts.
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrUserTaken error = errors.New("username or email already taken")
var ErrUserNotFound error = errors.New("user not found")
var ErrFeedbackNotFound error = errors.New("feedback not found")
var ErrLoginRequired error = errors.New("login required")

const sessionTokenHours = 24

// Board is the feedback board service: account registration, credential
// verification and owner-gated feedback CRUD.
type Board struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

// NewBoard is a constructor function for the Board type.
func NewBoard(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Board {
	return &Board{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register hashes the password, persists the new user and logs them straight
// in by issuing a session token. The plaintext password is never stored.
func (b *Board) Register(ctx context.Context, msg RegisterMessage) (string, UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:  msg.Username,
		Password:  string(hash),
		Email:     msg.Email,
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
	}

	if err = b.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return "", UserRecord{}, ErrUserTaken
		}
		return "", UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	token, err := b.issueToken(user.Username)
	if err != nil {
		return "", UserRecord{}, err
	}

	b.logs.Infow("user registered", "username", user.Username)

	return token, userRecord(user), nil
}

// Authenticate verifies the supplied credentials and returns a signed session
// token on success.
func (b *Board) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := b.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(msg.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return b.issueToken(user.Username)
}

// SessionIdentity resolves the username a session token proves control of.
// An empty or invalid token yields the anonymous identity "".
func (b *Board) SessionIdentity(token string) string {
	if token == "" {
		return ""
	}

	claims, err := b.jwtIssuer.Validate(token)
	if err != nil {
		b.logs.Debugw("session token rejected", "error", err)
		return ""
	}

	username, _ := claims["sub"].(string)
	return username
}

// Authorize allows an operation only when the caller has a session identity
// and it strictly equals the resource owner.
func (b *Board) Authorize(session, owner string) bool {
	return session != "" && session == owner
}

// UserPage returns a user together with all feedback they own. Only the user
// themselves may view their page.
func (b *Board) UserPage(ctx context.Context, session, username string) (UserPage, error) {
	if !b.Authorize(session, username) {
		return UserPage{}, ErrLoginRequired
	}

	user, err := b.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserPage{}, ErrUserNotFound
		}
		return UserPage{}, fmt.Errorf("get user: %w", err)
	}

	feedback, err := b.repo.ListFeedbackByUser(ctx, username)
	if err != nil {
		return UserPage{}, fmt.Errorf("list user feedback: %w", err)
	}

	records := make([]FeedbackRecord, len(feedback))
	for i, fb := range feedback {
		records[i] = feedbackRecord(fb)
	}

	return UserPage{
		User:     userRecord(user),
		Feedback: records,
	}, nil
}

// CreateFeedback stores a new feedback note under username. The session must
// belong to that same user.
func (b *Board) CreateFeedback(ctx context.Context, session, username string, msg FeedbackMessage) (FeedbackRecord, error) {
	if !b.Authorize(session, username) {
		return FeedbackRecord{}, ErrLoginRequired
	}

	feedback, err := b.repo.CreateFeedback(ctx, repository.Feedback{
		Title:    msg.Title,
		Content:  msg.Content,
		Username: username,
	})
	if err != nil {
		return FeedbackRecord{}, fmt.Errorf("create feedback: %w", err)
	}

	b.logs.Infow("feedback created", "id", feedback.ID, "username", username)

	return feedbackRecord(feedback), nil
}

func (b *Board) GetFeedback(ctx context.Context, id int64) (FeedbackRecord, error) {
	feedback, err := b.repo.GetFeedback(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return FeedbackRecord{}, ErrFeedbackNotFound
		}
		return FeedbackRecord{}, fmt.Errorf("get feedback: %w", err)
	}

	return feedbackRecord(feedback), nil
}

// UpdateFeedback changes title and content of a feedback note. The row is
// loaded first so a missing id reports not-found before the owner check runs;
// id and username stay untouched.
func (b *Board) UpdateFeedback(ctx context.Context, session string, id int64, msg FeedbackMessage) (FeedbackRecord, error) {
	feedback, err := b.repo.GetFeedback(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return FeedbackRecord{}, ErrFeedbackNotFound
		}
		return FeedbackRecord{}, fmt.Errorf("get feedback: %w", err)
	}

	if !b.Authorize(session, feedback.Username) {
		return FeedbackRecord{}, ErrLoginRequired
	}

	updated, err := b.repo.UpdateFeedback(ctx, id, msg.Title, msg.Content)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return FeedbackRecord{}, ErrFeedbackNotFound
		}
		return FeedbackRecord{}, fmt.Errorf("update feedback: %w", err)
	}

	return feedbackRecord(updated), nil
}

// DeleteFeedback removes a feedback note owned by the session user.
func (b *Board) DeleteFeedback(ctx context.Context, session string, id int64) error {
	feedback, err := b.repo.GetFeedback(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return ErrFeedbackNotFound
		}
		return fmt.Errorf("get feedback: %w", err)
	}

	if !b.Authorize(session, feedback.Username) {
		return ErrLoginRequired
	}

	if err = b.repo.DeleteFeedback(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return ErrFeedbackNotFound
		}
		return fmt.Errorf("delete feedback: %w", err)
	}

	b.logs.Infow("feedback deleted", "id", id, "username", feedback.Username)

	return nil
}

// DeleteUser removes a user account and, atomically, every feedback note the
// account owns. Only the user may delete themselves.
func (b *Board) DeleteUser(ctx context.Context, session, username string) error {
	if !b.Authorize(session, username) {
		return ErrLoginRequired
	}

	if err := b.repo.DeleteUserWithFeedback(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user with feedback: %w", err)
	}

	b.logs.Infow("user deleted", "username", username)

	return nil
}

func (b *Board) issueToken(username string) (string, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		Username:   username,
		Expiration: sessionTokenHours,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func userRecord(user repository.User) UserRecord {
	return UserRecord{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func feedbackRecord(feedback repository.Feedback) FeedbackRecord {
	return FeedbackRecord{
		ID:       feedback.ID,
		Title:    feedback.Title,
		Content:  feedback.Content,
		Username: feedback.Username,
	}
}
