package domain

// ShippingMethod is one of the factory's three delivery modes. The values are
// stable API identifiers; Label carries the customer-facing Arabic text.
type ShippingMethod string

const (
	ShippingExport      ShippingMethod = "export"
	ShippingPrivateCar  ShippingMethod = "private-car"
	ShippingSharedTruck ShippingMethod = "shared-truck"
)

// DefaultShipping is preselected on every new cart.
const DefaultShipping = ShippingSharedTruck

func ShippingMethods() []ShippingMethod {
	return []ShippingMethod{ShippingExport, ShippingPrivateCar, ShippingSharedTruck}
}

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingExport, ShippingPrivateCar, ShippingSharedTruck:
		return true
	}
	return false
}

func (m ShippingMethod) Label() string {
	switch m {
	case ShippingExport:
		return "تصدير دولي (شركات شحن دولية)"
	case ShippingPrivateCar:
		return "سيارة خاصة (توصيل مباشر)"
	case ShippingSharedTruck:
		return "عربة شحن مجمعة (عن طريق شركات الشحن)"
	}
	return string(m)
}

// Note returns the advisory text shown next to the selected method: expected
// cost ranges for the domestic modes, a follow-up promise for export.
func (m ShippingMethod) Note() string {
	switch m {
	case ShippingPrivateCar:
		return "يتوقع أن تبلغ تكلفة الشحن من 1000 جنيه إلى 5000 جنيه مصري حسب مكان التوصيل."
	case ShippingSharedTruck:
		return "تكلفة الشحن المجمعة تتراوح من 500 إلى 3000 جنيه حسب المكان وتوافر الطلبات في منطقتك."
	case ShippingExport:
		return "سيتم التواصل معكم قريباً عن طريق مكتب الشحن الدولي المناسب لبلدكم لتحديد التكاليف والمواعيد."
	}
	return ""
}

// PaymentMethod is one of the two accepted payment modes.
type PaymentMethod string

const (
	PaymentBankTransfer  PaymentMethod = "bank-transfer"
	PaymentDepositAndCOD PaymentMethod = "deposit-cod"
)

// DefaultPayment is preselected on every new cart.
const DefaultPayment = PaymentDepositAndCOD

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentBankTransfer, PaymentDepositAndCOD}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentBankTransfer, PaymentDepositAndCOD:
		return true
	}
	return false
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentBankTransfer:
		return "خدمات بنكية (تحويل كامل)"
	case PaymentDepositAndCOD:
		return "عربون 10% والباقي عند الاستلام"
	}
	return string(m)
}
