package service

import "errors"

var (
	ErrValidation        = errors.New("validation")         // 400
	ErrNotFound          = errors.New("not found")          // 400 on login, 404 on products
	ErrInvalidCredential = errors.New("invalid credential") // 400
	ErrMissingImage      = errors.New("missing image")      // 400
	ErrMail              = errors.New("mail relay")         // 500
)
