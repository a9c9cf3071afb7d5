package payload

import (
	"feedbacker/internal/core"

	"github.com/jellydator/validation"
)

type FeedbackRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (f FeedbackRequest) Validate() error {
	return validation.ValidateStruct(&f,
		// the title column allows 100 chars, the inbound form keeps 50
		validation.Field(&f.Title, validation.Required, validation.Length(1, 50)),
		validation.Field(&f.Content, validation.Required),
	)
}

func (f FeedbackRequest) ToMessage() core.FeedbackMessage {
	return core.FeedbackMessage{
		Title:   f.Title,
		Content: f.Content,
	}
}
