package logging

import "errors"

// ErrConfiguration is returned when a required parameter for the chosen
// logger mode is missing or inconsistent. Match with errors.Is.
var ErrConfiguration = errors.New("invalid logger configuration")
