package core

import (
	"context"
	"feedbacker/internal/repository"
	tokenIssuer "feedbacker/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	DeleteUserWithFeedback(ctx context.Context, username string) error
	CreateFeedback(ctx context.Context, feedback repository.Feedback) (repository.Feedback, error)
	GetFeedback(ctx context.Context, id int64) (repository.Feedback, error)
	UpdateFeedback(ctx context.Context, id int64, title, content string) (repository.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
	ListFeedbackByUser(ctx context.Context, username string) ([]repository.Feedback, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
