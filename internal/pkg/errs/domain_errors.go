package errs

// Domain-specific sentinel errors shared by the command and query layers
var (
	// Hotel errors
	ErrHotelNotFound      = New("hotel not found")
	ErrDuplicateHotelName = New("hotel name already exists")
	ErrHotelInUse         = New("hotel still has room types")

	// Room type errors
	ErrRoomTypeNotFound = New("room type not found")

	// Rate adjustment errors
	ErrRateAdjustmentNotFound = New("rate adjustment not found")

	// User errors
	ErrUserNotFound      = New("user not found")
	ErrDuplicateUsername = New("username already exists")

	// Auth errors
	ErrInvalidCredentials = New("incorrect username or password")
	ErrUnauthorized       = New("could not validate credentials")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
