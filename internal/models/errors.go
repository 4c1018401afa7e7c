package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrInvalidPassword    = errors.New("models: invalid password")

	ErrPropertyNotFound    = errors.New("property not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrComplaintNotFound   = errors.New("complaint not found")
	ErrChatNotFound        = errors.New("chat not found")

	ErrInvalidDateRange     = errors.New("start date is after end date")
	ErrInvalidTotalPrice    = errors.New("total price must be positive")
	ErrDateConflict         = errors.New("dates conflict with an existing reservation")
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	ErrDuplicateFavorite  = errors.New("property already in favorites")
	ErrDuplicateComplaint = errors.New("complaint already submitted for this property")

	ErrForbidden       = errors.New("operation not allowed for this user")
	ErrUnauthenticated = errors.New("no valid session")
	ErrValidation      = errors.New("invalid input")

	ErrInvalidResetCode = errors.New("invalid or expired reset code")
)
