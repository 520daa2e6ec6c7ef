package repository

import "errors"

var ErrEntryNotFound = errors.New("vault entry not found")
