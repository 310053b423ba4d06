package services

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses in the
// handlers package.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	// Authentication
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailTaken         = errors.New("email address is already in use")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters")
	ErrResetTokenInvalid      = errors.New("invalid or expired reset token")

	// Entity lookups
	ErrPlayerNotFound      = errors.New("player not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrSettingsNotFound    = errors.New("settings not found")

	// Messaging
	ErrMessageEmpty     = errors.New("message text is required")
	ErrNoRecipients     = errors.New("at least one player must be selected")
	ErrTemplateNotFound = errors.New("message template not found")

	// Avatar upload
	ErrAvatarTooLarge = errors.New("avatar image must be at most 2 MiB")
	ErrAvatarNotImage = errors.New("avatar must be an image file")
)
