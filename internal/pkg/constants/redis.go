package constants

// Redis key formats
const (
	// OTP attempt throttling
	KeyOTPAttempts = "otp:attempts:%s:%s" // Format: otp:attempts:{user_id}:{otp_type}

	// Rate limiting
	KeyRateLimitPrefix = "rate:limit"
)
