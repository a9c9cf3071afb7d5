package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// loginPath is where unauthenticated callers are pointed to.
const loginPath = "/board/login"

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
	Login   string      `json:"login,omitempty"`   // login entry point on denied access
}
