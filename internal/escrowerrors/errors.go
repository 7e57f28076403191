package escrowerrors

import "errors"

// Kind classifies an escrow error
type Kind int

const (
	KindUnknown Kind = iota
	NotFound
	Unauthorized
	InvalidState
	InvalidArgument
	InsufficientFunds
	TransferFailed
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case Unauthorized:
		return "Unauthorized"
	case InvalidState:
		return "InvalidState"
	case InvalidArgument:
		return "InvalidArgument"
	case InsufficientFunds:
		return "InsufficientFunds"
	case TransferFailed:
		return "TransferFailed"
	default:
		return "Unknown"
	}
}

// Error is a typed escrow error carrying a fixed, client-visible message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a typed error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the fixed message of the first *Error in err's chain
func MessageOf(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, true
	}
	return "", false
}

// Registry errors
var (
	ErrItemNotFound = New(NotFound, "Item does not exist")
)

// Authorization errors
var (
	ErrOnlyBuyer      = New(Unauthorized, "Only buyer can call this function")
	ErrOnlySeller     = New(Unauthorized, "Only seller can call this function")
	ErrOnlyOwner      = New(Unauthorized, "Only owner can call this function")
	ErrSellerIsBuyer  = New(Unauthorized, "Seller cannot buy their own item")
	ErrReservedCaller = New(Unauthorized, "Caller identity is reserved")
)

// State machine errors
var (
	ErrNotAvailable        = New(InvalidState, "Item is not available for purchase")
	ErrNotInEscrow         = New(InvalidState, "Item is not in escrow")
	ErrNotEscrowOrDisputed = New(InvalidState, "Item must be in escrow or disputed")
	ErrNotDisputed         = New(InvalidState, "Item is not disputed")
)

// Argument and value errors
var (
	ErrZeroPrice         = New(InvalidArgument, "Price must be greater than zero")
	ErrFeeTooHigh        = New(InvalidArgument, "Fee cannot exceed 10%")
	ErrMissingCaller     = New(InvalidArgument, "Caller identity is required")
	ErrNonPositiveAmount = New(InvalidArgument, "Amount must be greater than zero")
	ErrInsufficientFunds = New(InsufficientFunds, "Insufficient funds sent")
)

// Ledger errors
var (
	ErrInsufficientBalance = New(TransferFailed, "Insufficient balance for transfer")
	ErrTransferRejected    = New(TransferFailed, "Transfer rejected by recipient")
	ErrBalanceOverflow     = New(TransferFailed, "Balance overflow")
)
