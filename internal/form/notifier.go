package form

import "errors"

const (
	MessageMissingFields        = "Please fill in all required fields 😠"
	MessageMissingSpecification = "Please specify how you heard about us 😠"
	MessageInvalidEmail         = "Please enter a valid email address 😠"

	MessagePending     = "Getting you on the waitlist... 🚀"
	MessageSuccess     = "Thank you for joining the waitlist 🎉"
	MessageRateLimited = "You're doing that too much. Please try again later"
	MessageRelayFailed = "Failed to save your details. Please try again 😢."
	MessageUnknown     = "An error occurred. Please try again 😢."
)

// Notifier is the toast surface. Warn is used for blocked submissions; Pending,
// Success and Error follow a request that was actually sent.
type Notifier interface {
	Warn(message string)
	Pending(message string)
	Success(message string)
	Error(message string)
}

// ToastMessage returns the user-facing text for a validation or submit error.
func ToastMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return MessageMissingFields
	case errors.Is(err, ErrMissingSpecification):
		return MessageMissingSpecification
	case errors.Is(err, ErrInvalidEmail):
		return MessageInvalidEmail
	case errors.Is(err, ErrRateLimited):
		return MessageRateLimited
	case errors.Is(err, ErrRelayFailed):
		return MessageRelayFailed
	default:
		return MessageUnknown
	}
}
