package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNotFound     = goerr.New("hook not found")
	ErrInvalidInput = goerr.New("invalid input")
)
