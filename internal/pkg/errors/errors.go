package errors

import "errors"

// Custom application errors
var (
	ErrVehicleNotFound   = errors.New("vehicle not found")            // Referenced plate does not exist
	ErrClientNotFound    = errors.New("client not found")             // Referenced client does not exist
	ErrCategoryNotFound  = errors.New("category not found")           // Tier name has no matching category
	ErrDatabaseOperation = errors.New("database operation failed")    // Generic storage error
	ErrNotification      = errors.New("notification delivery failed") // WhatsApp transport error
	ErrScheduling        = errors.New("scheduling failed")            // Cron registration error
	ErrImport            = errors.New("import failed")                // CSV import error
	ErrInvalidInput      = errors.New("invalid input")                // Malformed request payload
)
