package domain

import "errors"

// Errors surfaced by the stores, session authority and report pipeline.
// Handlers match them with errors.Is and turn each into a flash notice plus
// a redirect to a safe page; none of them is fatal to the process.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingReason      = errors.New("reason is required for a withdrawal")
	ErrInvalidReportType  = errors.New("invalid report type")
	ErrRender             = errors.New("report rendering failed")
)
