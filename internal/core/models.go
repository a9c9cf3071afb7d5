package core

type RegisterMessage struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type FeedbackMessage struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UserRecord is the outward shape of a user. The password hash never leaves
// the core.
type UserRecord struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type FeedbackRecord struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
}

type UserPage struct {
	User     UserRecord       `json:"user"`
	Feedback []FeedbackRecord `json:"feedback"`
}
