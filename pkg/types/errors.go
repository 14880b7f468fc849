package types

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrSessionNotFound      = errors.New("session not found")

	ErrCINExists          = errors.New("CIN already exists")
	ErrUserBanned         = errors.New("account is banned")
	ErrInvalidTransition  = errors.New("illegal status transition")
	ErrInvalidCredentials = errors.New("incorrect CIN or password")
)
