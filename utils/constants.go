// File: utils/constants.go
package utils

// SessionKeyPrefix is the prefix used for Redis booking session keys.
const SessionKeyPrefix = "booking-session:"
