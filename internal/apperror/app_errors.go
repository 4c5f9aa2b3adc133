package apperror

import "errors"

// Protocol-level errors are answered with an error packet and never end a connection.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadMove        = errors.New("bad move")
	ErrNoGame         = errors.New("no game in progress")
)

// Connection-level errors end the owning connection only.
var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrSendFailure      = errors.New("failed to send packet")
)

