package enum

// PaymentMethod is how an order was settled at completion time.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodSplit  PaymentMethod = "split"
)

// Valid reports whether the method is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodOnline, PaymentMethodSplit:
		return true
	}
	return false
}
