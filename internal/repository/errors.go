package repository

import "errors"

// ErrDeviceTokenNotFound reports a party without a stored push token. The
// push gateway treats it as a skip, not a failure.
var ErrDeviceTokenNotFound = errors.New("device token not found")
