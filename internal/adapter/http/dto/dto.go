package dto

// CommentEventRequest is the webhook body for an inbound comment.
type CommentEventRequest struct {
	ThreadRef    string `json:"thread_ref" binding:"required"`
	Body         string `json:"body" binding:"required"`
	SenderID     int64  `json:"sender_id" binding:"required"`
	SenderHandle string `json:"sender_handle" binding:"required"`
}

// LinkedAccountResponse is the response body for a link result.
type LinkedAccountResponse struct {
	AccountID       string `json:"account_id"`
	Primary         bool   `json:"primary"`
	BalanceUnlocked int64  `json:"balance_unlocked"`
}

// PrepareWithdrawalRequest is the request body for a withdrawal preview.
type PrepareWithdrawalRequest struct {
	Amount  int64  `json:"amount" binding:"required,gt=0"`
	Address string `json:"address" binding:"required"`
}

// PrepareWithdrawalResponse is the response body for a withdrawal preview.
type PrepareWithdrawalResponse struct {
	PreparedID string `json:"prepared_id"`
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
	Address    string `json:"address"`
}

// ExecuteWithdrawalRequest is the request body for withdrawal execution.
type ExecuteWithdrawalRequest struct {
	PreparedID string `json:"prepared_id" binding:"required"`
}

// WithdrawalResponse is the response body for an executed withdrawal.
type WithdrawalResponse struct {
	ID      string `json:"id"`
	Amount  int64  `json:"amount"`
	Fee     int64  `json:"fee"`
	Address string `json:"address"`
	Status  string `json:"status"`
}
