// Package validation checks registration, login and update payloads before
// any store access happens.
package validation

import (
	"regexp"
	"strings"

	"github.com/hongminglow/accounts-be/internal/models/dto"
)

// Code names the rule a payload failed.
type Code string

const (
	MissingFields    Code = "MissingFields"
	InvalidEmail     Code = "InvalidEmail"
	InvalidName      Code = "InvalidName"
	InvalidCategory  Code = "InvalidCategory"
	InvalidUsername  Code = "InvalidUsername"
	InvalidAge       Code = "InvalidAge"
	WeakPassword     Code = "WeakPassword"
	ForbiddenPattern Code = "ForbiddenPattern"
)

// Variant selects the account kind a registration payload is checked against.
type Variant int

const (
	User Variant = iota
	Business
)

// User-facing messages. Clients match on these strings.
const (
	msgMissingUserFields     = "Faltan campos obligatorios: name, email, age, password"
	msgMissingBusinessFields = "Faltan datos necesarios: nombre, correo, nombre de usuario, categoría, contraseña"
	msgMissingLoginFields    = "Missing parameters for login"
	msgInvalidEmail          = "Email inválido"
	msgInvalidName           = "Nombre inválido"
	msgInvalidCategory       = "Categoría inválida"
	msgInvalidUsername       = "Nombre de usuario inválido"
	msgInvalidAge            = "Edad inválida"
	msgPasswordTooShort      = "La contraseña debe tener al menos 8 caracteres"
	msgPasswordForbidden     = "La contraseña contiene caracteres o patrones no permitidos"
	msgPasswordLetterDigit   = "La contraseña debe contener al menos una letra y un número"
)

// MinPasswordLength is the floor applied on registration and update.
const MinPasswordLength = 8

// Error is a failed validation rule.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserRegistration is a user registration payload that passed every rule.
type UserRegistration struct {
	Email    string
	Name     string
	Username *string
	Surname  *string
	Age      int
	Password string
}

// BusinessRegistration is a business registration payload that passed every rule.
type BusinessRegistration struct {
	Email       string
	Name        string
	Username    string
	Category    string
	Rating      *float64
	Description *string
	Address     *string
	Password    string
}

// Login carries the credentials of a login payload.
type Login struct {
	Email    string
	Password string
}

// ValidateUserRegistration applies the user registration rules in order and
// stops at the first failure.
func ValidateUserRegistration(p dto.Payload) (UserRegistration, error) {
	email, _ := p.Lookup("email")
	name, _ := p.Lookup("name")
	password, _ := p.Lookup("password")
	age, hasAge := p.Lookup("age")

	if !truthy(email) || !truthy(name) || !hasAge || !truthy(password) {
		return UserRegistration{}, missingFields(User)
	}
	emailStr, err := checkEmail(email)
	if err != nil {
		return UserRegistration{}, err
	}
	nameStr, ok := nonBlank(name)
	if !ok {
		return UserRegistration{}, fail(InvalidName, msgInvalidName)
	}
	ageNum, ok := coerceAge(age)
	if !ok {
		return UserRegistration{}, fail(InvalidAge, msgInvalidAge)
	}
	passwordStr, err := checkRegistrationPassword(password)
	if err != nil {
		return UserRegistration{}, err
	}

	return UserRegistration{
		Email:    emailStr,
		Name:     nameStr,
		Username: optionalString(p, "username"),
		Surname:  optionalString(p, "surname"),
		Age:      ageNum,
		Password: passwordStr,
	}, nil
}

// ValidateBusinessRegistration applies the business registration rules in
// order and stops at the first failure.
func ValidateBusinessRegistration(p dto.Payload) (BusinessRegistration, error) {
	email, _ := p.Lookup("email")
	name, _ := p.Lookup("name")
	username, _ := p.Lookup("busi_username")
	category, _ := p.Lookup("category")
	password, _ := p.Lookup("password")

	if !truthy(email) || !truthy(name) || !truthy(username) || !truthy(category) || !truthy(password) {
		return BusinessRegistration{}, missingFields(Business)
	}
	emailStr, err := checkEmail(email)
	if err != nil {
		return BusinessRegistration{}, err
	}
	nameStr, ok := nonBlank(name)
	if !ok {
		return BusinessRegistration{}, fail(InvalidName, msgInvalidName)
	}
	categoryStr, ok := nonBlank(category)
	if !ok {
		return BusinessRegistration{}, fail(InvalidCategory, msgInvalidCategory)
	}
	usernameStr, ok := nonBlank(username)
	if !ok {
		return BusinessRegistration{}, fail(InvalidUsername, msgInvalidUsername)
	}
	passwordStr, err := checkRegistrationPassword(password)
	if err != nil {
		return BusinessRegistration{}, err
	}

	return BusinessRegistration{
		Email:       emailStr,
		Name:        nameStr,
		Username:    usernameStr,
		Category:    categoryStr,
		Rating:      optionalNumber(p, "rating"),
		Description: optionalString(p, "description"),
		Address:     optionalString(p, "address"),
		Password:    passwordStr,
	}, nil
}

// ValidateLogin requires an email and a password.
func ValidateLogin(p dto.Payload) (Login, error) {
	email, _ := p.Lookup("email")
	password, _ := p.Lookup("password")
	if !truthy(email) || !truthy(password) {
		return Login{}, fail(MissingFields, msgMissingLoginFields)
	}
	return Login{
		Email:    NormalizeEmail(scalarString(email)),
		Password: scalarString(password),
	}, nil
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func missingFields(v Variant) *Error {
	if v == Business {
		return fail(MissingFields, msgMissingBusinessFields)
	}
	return fail(MissingFields, msgMissingUserFields)
}

func checkEmail(v any) (string, error) {
	s, ok := v.(string)
	if !ok || !emailPattern.MatchString(s) {
		return "", fail(InvalidEmail, msgInvalidEmail)
	}
	return NormalizeEmail(s), nil
}

func nonBlank(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func checkRegistrationPassword(v any) (string, error) {
	password, ok := coercePassword(v)
	if !ok || len([]rune(password)) < MinPasswordLength {
		return "", fail(WeakPassword, msgPasswordTooShort)
	}
	if err := CheckPasswordPolicy(password); err != nil {
		return "", err
	}
	return password, nil
}

func optionalString(p dto.Payload, key string) *string {
	v, _ := p.Lookup(key)
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func optionalNumber(p dto.Payload, key string) *float64 {
	v, _ := p.Lookup(key)
	switch t := v.(type) {
	case nil, bool:
		return nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
	}
	f, ok := toNumber(v)
	if !ok || !finite(f) {
		return nil
	}
	return &f
}
