package domain

// Country keys the currency table. The values match what the storefront's
// country selector submits.
type Country string

const (
	CountryEgypt       Country = "مصر"
	CountrySaudiArabia Country = "السعودية"
	CountryUAE         Country = "الإمارات"
	CountryUSA         Country = "أمريكا"
	CountryOther       Country = "أخرى"
)

func Countries() []Country {
	return []Country{CountryEgypt, CountrySaudiArabia, CountryUAE, CountryUSA, CountryOther}
}

// User is a session-scoped identity created on login or registration. It is
// never persisted; logging out or session expiry destroys it.
type User struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	Country     Country `json:"country"`
	Governorate string  `json:"governorate,omitempty"`
	Currency    string  `json:"currency"`
	IsAdmin     bool    `json:"isAdmin"`
}
