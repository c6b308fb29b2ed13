package payment

import (
	"errors"

	"mansion-pos/internal/pkg/patch"
)

var (
	ErrInvalidType   = errors.New("invalid payment type")
	ErrInvalidMethod = errors.New("invalid payment method")
)

type Type string

const (
	TypeRoomCharge    Type = "ROOM_CHARGE"
	TypeLateFee       Type = "LATE_FEE"
	TypeDeposit       Type = "DEPOSIT"
	TypeDepositReturn Type = "DEPOSIT_RETURN"
	TypeOther         Type = "OTHER"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRoomCharge, TypeLateFee, TypeDeposit, TypeDepositReturn, TypeOther:
		return true
	default:
		return false
	}
}

type Method string

const (
	MethodCash       Method = "CASH"
	MethodTransfer   Method = "TRANSFER"
	MethodCreditCard Method = "CREDIT_CARD"
)

const DefaultMethod = MethodCash

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCreditCard:
		return true
	default:
		return false
	}
}

// ParseMethod treats an empty value as the front-desk default (cash).
func ParseMethod(s string) (Method, error) {
	m := patch.OrDefault(Method(s), DefaultMethod)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}
