package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_USER    = "USER"
)

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Create failed"
	ERROR_UPDATE               = "Update failed"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"

	MISSING_LOGIN_INPUT = "Email and password are required"
	INVALID_EMAIL       = "Email does not exist"
	INVALID_PASSWORD    = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE  = "Account is disabled"
	NOT_ADMIN           = "Admin permission required"
	NOT_LOGGED_IN       = "Please log in"
)

// Booking statuses. PENDING is the admission state; payment reconciliation
// moves a booking to PARTIAL_PAYMENT or COMPLETED; CONFIRMED is set only by
// a privileged manual transition.
const (
	BookingPending        = "PENDING"
	BookingPartialPayment = "PARTIAL_PAYMENT"
	BookingCompleted      = "COMPLETED"
	BookingCancelled      = "CANCELLED"
	BookingConfirmed      = "CONFIRMED"
)

// Payment statuses. REFUNDED marks a partial payment with a shortage
// outstanding, flagged for refund review if the guest never tops up.
const (
	PaymentPending  = "PENDING"
	PaymentRefunded = "REFUNDED"
	PaymentPaid     = "PAID"
)

const (
	BookingTypeApartment = "APARTMENT"
	BookingTypeRoom      = "ROOM"
)
