package models

// EmailMessage is the payload handed to the mail transport.
type EmailMessage struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Content     string `json:"content"`
	HTMLContent string `json:"html_content"`
}

const (
	// EmailModeSent means the transport accepted the message.
	EmailModeSent = "sent"
	// EmailModeLogged means no transport is configured; the message was
	// logged and reported as success. Callers that care must inspect Mode.
	EmailModeLogged = "logged"
)

type EmailResult struct {
	Success bool   `json:"success"`
	Mode    string `json:"mode"`
	Error   string `json:"error,omitempty"`
}

// DispatchResult reports both legs of a dual dispatch. Success is true when
// either leg succeeded.
type DispatchResult struct {
	UserEmail  EmailResult `json:"userEmail"`
	AdminEmail EmailResult `json:"adminEmail"`
	Success    bool        `json:"success"`
}
