package models

// User identifies the signed-in account. ID matches the auth provider's
// identifier; the remaining fields are optional and empty when unknown.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// DisplayName returns the best human-readable name available.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Email
	}
}
