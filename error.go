package billing

import "errors"

var (
	ErrInvalidSeed         = errors.New("invalid participant seed")
	ErrInsufficientAmount  = errors.New("not enough coins to perform emission")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUnknownParticipant  = errors.New("sender or recipient not found")
	ErrSelfTransfer        = errors.New("sender and recipient are the same")
	ErrInsufficientBalance = errors.New("balance has fewer coins than requested")
	ErrTransferConsistency = errors.New("coin store does not back the recorded balance")
	ErrEmptyLedger         = errors.New("no coin has been minted")
	ErrUnknownCoin         = errors.New("coin not found")
)
