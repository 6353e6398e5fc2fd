package models

// Status values carried in [ProcessResponse].
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ProcessResponse is the JSON body the decryption service returns when it
// cannot produce an unlocked document.
type ProcessResponse struct {
	// Status is either [StatusSuccess] or [StatusError].
	Status string `json:"status"`

	// Message is a human readable explanation.
	Message string `json:"message"`

	// IsUnlocked is present only for password related failures.
	IsUnlocked *bool `json:"isUnlocked,omitempty"`
}
