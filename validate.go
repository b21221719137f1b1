package signup

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Code identifies one validation outcome, independent of display language.
// The Resolver owns the mapping from codes to user-facing strings.
type Code string

const (
	CodeUsernameNull    Code = "username_null"
	CodeUsernameSize    Code = "username_size"
	CodeEmailNull       Code = "email_null"
	CodeEmailInvalid    Code = "email_invalid"
	CodeEmailInUse      Code = "email_inuse"
	CodePasswordNull    Code = "password_null"
	CodePasswordSize    Code = "password_size"
	CodePasswordPattern Code = "password_pattern"

	CodeUserCreateSuccess Code = "user_create_success"
	CodeEmailFailure      Code = "email_failure"
)

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// ValidationError carries the first failing code for each invalid field.
type ValidationError struct {
	Fields map[string]Code
}

func (e *ValidationError) Error() string {
	return "invalid registration request"
}

// validateRequest runs every field's rules over the candidate request.
// Fields are evaluated independently of one another; within a field the
// first failing rule wins. The in-use lookup only runs once the syntactic
// email rules have passed, so an invalid address is never looked up.
func validateRequest(req registerUserRequest, users Repository) map[string]Code {
	fields := map[string]Code{}

	if code := validateUsername(req.Username); code != "" {
		fields["username"] = code
	}
	if code := validateEmail(req.Email, users); code != "" {
		fields["email"] = code
	}
	if code := validatePassword(req.Password); code != "" {
		fields["password"] = code
	}

	return fields
}

func validateUsername(username string) Code {
	if username == "" {
		return CodeUsernameNull
	}
	if n := utf8.RuneCountInString(username); n < 4 || n > 32 {
		return CodeUsernameSize
	}
	return ""
}

func validateEmail(email string, users Repository) Code {
	if email == "" {
		return CodeEmailNull
	}
	if !emailRegexp.MatchString(email) {
		return CodeEmailInvalid
	}
	if u, _ := users.FindByEmail(email); u != nil {
		return CodeEmailInUse
	}
	return ""
}

func validatePassword(password string) Code {
	if password == "" {
		return CodePasswordNull
	}
	if utf8.RuneCountInString(password) < 6 {
		return CodePasswordSize
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return CodePasswordPattern
	}
	return ""
}
