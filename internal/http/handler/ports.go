package handler

import (
	"context"
	"feedbacker/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BoardService . BoardService
type BoardService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (string, core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	SessionIdentity(token string) string
	UserPage(ctx context.Context, session, username string) (core.UserPage, error)
	CreateFeedback(ctx context.Context, session, username string, msg core.FeedbackMessage) (core.FeedbackRecord, error)
	GetFeedback(ctx context.Context, id int64) (core.FeedbackRecord, error)
	UpdateFeedback(ctx context.Context, session string, id int64, msg core.FeedbackMessage) (core.FeedbackRecord, error)
	DeleteFeedback(ctx context.Context, session string, id int64) error
	DeleteUser(ctx context.Context, session, username string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
