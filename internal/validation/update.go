package validation

import "github.com/hongminglow/accounts-be/internal/models/dto"

// UserUpdate holds the fields of an update payload that had the expected type.
// Password still needs hashing.
type UserUpdate struct {
	Email    *string
	Name     *string
	Surname  *string
	Username *string
	Age      *int
	Password *string
}

// ValidateUserUpdate never fails: unknown or mistyped fields are dropped.
// Passwords shorter than MinPasswordLength are dropped too; the registration
// policy is not reapplied here.
func ValidateUserUpdate(p dto.Payload) UserUpdate {
	var u UserUpdate
	if s, ok := stringField(p, "email"); ok {
		email := NormalizeEmail(s)
		u.Email = &email
	}
	if s, ok := stringField(p, "name"); ok {
		u.Name = &s
	}
	if s, ok := stringField(p, "surname"); ok {
		u.Surname = &s
	}
	if s, ok := stringField(p, "username"); ok {
		u.Username = &s
	}
	if v, ok := p.Lookup("age"); ok {
		if age, ok := strictAge(v); ok {
			u.Age = &age
		}
	}
	if s, ok := stringField(p, "password"); ok && len([]rune(s)) >= MinPasswordLength {
		u.Password = &s
	}
	return u
}

func stringField(p dto.Payload, key string) (string, bool) {
	v, _ := p.Lookup(key)
	s, ok := v.(string)
	return s, ok
}
