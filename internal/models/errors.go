package models

import "errors"

var (
	// ErrUserNotFound means the referenced user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrStatementNotFound means the statement does not exist, or
	// belongs to a different user (ownership is never disclosed).
	ErrStatementNotFound = errors.New("statement not found")

	// ErrInsufficientFunds means a withdrawal would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountNotPositive means the operation amount was zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrInvalidOperationType means the operation kind is not a known one.
	ErrInvalidOperationType = errors.New("invalid operation type")

	// ErrInvalidUserData means a registration request was missing required fields.
	ErrInvalidUserData = errors.New("name, email and password are required")

	// ErrEmailTaken means a user with that email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrIncorrectCredentials covers unknown email and wrong password alike.
	ErrIncorrectCredentials = errors.New("incorrect email or password")
)
