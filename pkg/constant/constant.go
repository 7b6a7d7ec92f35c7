package constant

import "time"

const (
	DefaultUserRoleID = 1

	// ResetTokenTTL bounds how long a password reset token stays usable.
	ResetTokenTTL = 30 * time.Minute

	// ResetNotificationTopic is the channel reset notifications are published on.
	ResetNotificationTopic = "password-reset"
)
