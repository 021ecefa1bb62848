package contract

import "errors"

var (
	ErrSettingsNotFound = errors.New("contract settings not found")
)
