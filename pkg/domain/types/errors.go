package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrMissingRepositoryURL is returned when a webhook payload carries no repository URL.
	ErrMissingRepositoryURL = goerr.New("repository url is missing in payload")
	// ErrUnresolvableRepository is returned when the repository URL can not be parsed into owner and name.
	ErrUnresolvableRepository = goerr.New("can not determine repository info from url")

	ErrInvalidHookRecord = goerr.New("invalid hook record")
)
