package constants

// NATS subjects for withdrawal lifecycle events
const (
	SubjectWithdrawalCreated   = "withdrawals.created"
	SubjectWithdrawalCompleted = "withdrawals.completed"
	SubjectWithdrawalFailed    = "withdrawals.failed"
	SubjectWithdrawalCancelled = "withdrawals.cancelled"
)
