package handler

import (
	"encoding/json"
	"errors"
	"feedbacker/internal/core"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/payload"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Register       = "POST /board/register"
	Login          = "POST /board/login"
	GetUserPage    = "GET /board/users/{username}"
	DeleteUser     = "DELETE /board/users/{username}"
	AddFeedback    = "POST /board/users/{username}/feedback"
	GetFeedback    = "GET /board/feedback/{id}"
	EditFeedback   = "PUT /board/feedback/{id}"
	DeleteFeedback = "DELETE /board/feedback/{id}"
)

type BoardHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	board            BoardService
}

func NewBoardHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, boardService BoardService) *BoardHandler {
	return &BoardHandler{
		logs:             logger,
		requestValidator: requestValidator,
		board:            boardService,
	}
}

func (h *BoardHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.RegisterRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	token, user, err := h.board.Register(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserTaken) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"token": token,
		"user":  user,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *BoardHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.board.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			// same answer for unknown user and wrong password
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BoardHandler) HandleGetUserPage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	username := r.PathValue("username")
	session := h.board.SessionIdentity(r.Header.Get("AUTH_TOKEN"))

	page, err := h.board.UserPage(r.Context(), session, username)
	if err != nil {
		h.respondError(w, "Could not load user page", err, GetUserPage, requestId)
		return
	}

	h.respond(w, page, http.StatusOK, requestId)
}

func (h *BoardHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	username := r.PathValue("username")
	session := h.board.SessionIdentity(r.Header.Get("AUTH_TOKEN"))

	if err := h.board.DeleteUser(r.Context(), session, username); err != nil {
		h.respondError(w, "Could not delete user", err, DeleteUser, requestId)
		return
	}

	h.respond(w, Response{Message: "User deleted"}, http.StatusOK, requestId)
}

func (h *BoardHandler) HandleAddFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	username := r.PathValue("username")
	session := h.board.SessionIdentity(r.Header.Get("AUTH_TOKEN"))

	var payload payload.FeedbackRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not add feedback",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddFeedback,
			"request_id", requestId)
		return
	}

	feedback, err := h.board.CreateFeedback(r.Context(), session, username, payload.ToMessage())
	if err != nil {
		h.respondError(w, "Could not add feedback", err, AddFeedback, requestId)
		return
	}

	resp := map[string]core.FeedbackRecord{
		"feedback": feedback,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *BoardHandler) HandleGetFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := feedbackID(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "feedback id must be an integer",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid feedback id parameter",
			"error", err,
			"handler", GetFeedback,
			"request_id", requestId)
		return
	}

	feedback, err := h.board.GetFeedback(r.Context(), id)
	if err != nil {
		h.respondError(w, "Could not retrieve feedback", err, GetFeedback, requestId)
		return
	}

	resp := map[string]core.FeedbackRecord{
		"feedback": feedback,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BoardHandler) HandleEditFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	session := h.board.SessionIdentity(r.Header.Get("AUTH_TOKEN"))

	id, err := feedbackID(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "feedback id must be an integer",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid feedback id parameter",
			"error", err,
			"handler", EditFeedback,
			"request_id", requestId)
		return
	}

	var payload payload.FeedbackRequest
	err = h.requestValidator.DecodeAndValidateJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not edit feedback",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", EditFeedback,
			"request_id", requestId)
		return
	}

	feedback, err := h.board.UpdateFeedback(r.Context(), session, id, payload.ToMessage())
	if err != nil {
		h.respondError(w, "Could not edit feedback", err, EditFeedback, requestId)
		return
	}

	resp := map[string]core.FeedbackRecord{
		"feedback": feedback,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BoardHandler) HandleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	session := h.board.SessionIdentity(r.Header.Get("AUTH_TOKEN"))

	id, err := feedbackID(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "feedback id must be an integer",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid feedback id parameter",
			"error", err,
			"handler", DeleteFeedback,
			"request_id", requestId)
		return
	}

	if err := h.board.DeleteFeedback(r.Context(), session, id); err != nil {
		h.respondError(w, "Could not delete feedback", err, DeleteFeedback, requestId)
		return
	}

	h.respond(w, Response{Message: "Feedback deleted"}, http.StatusOK, requestId)
}

// respondError maps core sentinel errors onto status codes. A denied session
// gets a pointer to the login entry point instead of the page it asked for.
func (h *BoardHandler) respondError(w http.ResponseWriter, message string, err error, handlerName, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrLoginRequired):
		httpCode = http.StatusUnauthorized
		resp.Error = err.Error()
		resp.Login = loginPath
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrFeedbackNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *BoardHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func feedbackID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
