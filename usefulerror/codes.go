package usefulerror

// Standard error codes that can be re-used across the project.
// Keep this minimal. Reuse first before adding new ones.
const (
	ErrCodeUnsupportedManager  = "unsupported_manager"
	ErrCodeNoOperation         = "no_operation"
	ErrCodeMissingParameter    = "missing_parameter"
	ErrCodeDirectoryResolution = "directory_resolution_failed"
	ErrCodeProcessSpawn        = "process_spawn_failed"
	ErrCodeInvalidArgument     = "invalid_argument"
	ErrCodeNotFound            = "not_found"
	ErrCodePermissionDenied    = "permission_denied"
	ErrCodeTimeout             = "timeout"
	ErrCodeCanceled            = "canceled"
	ErrCodeUnknown             = "unknown"
)
