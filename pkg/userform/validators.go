package userform

import (
	"regexp"

	"github.com/dmitrymomot/formlab/pkg/validator"
)

// Rejection messages. They are shown verbatim to users.
const (
	MsgNameEmpty     = "Name cannot be empty"
	MsgNameAlpha     = "Name must contain only alphabetic characters and spaces"
	MsgNameTooShort  = "Name must be at least 2 characters long"
	MsgNameTooLong   = "Name must be no more than 50 characters long"
	MsgEmailEmpty    = "Email cannot be empty"
	MsgEmailInvalid  = "Invalid email address"
	MsgPhoneInvalid  = "Invalid phone number format"
	MsgAgeEmpty      = "Age cannot be empty"
	MsgAgeNotInteger = "Age must be a non-negative integer"
	MsgAgeRange      = "Age must be between 18 and 100"
	MsgURLEmpty      = "URL cannot be empty"
	MsgURLInvalid    = "Invalid URL format"
	MsgPasswordEmpty = "Password cannot be empty"
	MsgPasswordLen   = "Password must be between 8 and 20 characters"
	MsgPasswordUpper = "Password must contain at least one uppercase letter"
	MsgPasswordLower = "Password must contain at least one lowercase letter"
	MsgPasswordDigit = "Password must contain at least one number"
	MsgPasswordSpec  = "Password must contain at least one special character"
	MsgPasswordMatch = "Passwords do not match"
	MsgTerms         = "You must agree to the terms and conditions"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 50
	ageMin         = 18
	ageMax         = 100
	passwordMinLen = 8
	passwordMaxLen = 20

	// PasswordSpecialChars is the punctuation a password must draw at least one character from.
	PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

	// The TLD is exactly one letter: "a@b.c" passes, "a@b.com" does not.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._:$!%-]+@[A-Za-z0-9.-]+\.[A-Za-z]$`)

	urlPattern = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#].[^\s]*$`)
)

// ValidateName checks a person's name.
func ValidateName(value string) Outcome {
	f := FieldName.String()
	return outcome(validator.First(
		validator.Required(f, value).WithMessage(MsgNameEmpty),
		validator.MatchesPattern(f, value, namePattern, "alphabetic").WithMessage(MsgNameAlpha),
		validator.MinLen(f, value, nameMinLen).WithMessage(MsgNameTooShort),
		validator.MaxLen(f, value, nameMaxLen).WithMessage(MsgNameTooLong),
	))
}

// ValidateEmail checks an email address against a deliberately narrow pattern.
func ValidateEmail(value string) Outcome {
	f := FieldEmail.String()
	return outcome(validator.First(
		validator.Required(f, value).WithMessage(MsgEmailEmpty),
		validator.MatchesPattern(f, value, emailPattern, "email").WithMessage(MsgEmailInvalid),
	))
}

// ValidatePhone checks an optional phone number. Empty input is valid.
func ValidatePhone(value string) Outcome {
	f := FieldPhone.String()
	return outcome(validator.Optional(value,
		validator.ValidPhone(f, value).WithMessage(MsgPhoneInvalid),
	))
}

// ValidateAge checks that the raw age is a whole number within the allowed range.
func ValidateAge(value string) Outcome {
	f := FieldAge.String()
	age, _ := parseAge(value)
	return outcome(validator.First(
		validator.Required(f, value).WithMessage(MsgAgeEmpty),
		validator.NonNegativeIntegerString(f, value).WithMessage(MsgAgeNotInteger),
		validator.BetweenNum(f, age, ageMin, ageMax).WithMessage(MsgAgeRange),
	))
}

// ValidateURL checks for an absolute http, https or ftp URL.
func ValidateURL(value string) Outcome {
	f := FieldURL.String()
	return outcome(validator.First(
		validator.Required(f, value).WithMessage(MsgURLEmpty),
		validator.MatchesPattern(f, value, urlPattern, "url").WithMessage(MsgURLInvalid),
	))
}

// ValidatePassword checks password length and character classes.
func ValidatePassword(value string) Outcome {
	f := FieldPassword.String()
	return outcome(validator.First(
		validator.RequiredComparable(f, value).WithMessage(MsgPasswordEmpty),
		validator.LenBetween(f, value, passwordMinLen, passwordMaxLen).WithMessage(MsgPasswordLen),
		validator.PasswordUppercase(f, value).WithMessage(MsgPasswordUpper),
		validator.PasswordLowercase(f, value).WithMessage(MsgPasswordLower),
		validator.PasswordDigit(f, value).WithMessage(MsgPasswordDigit),
		validator.PasswordSpecialCharFrom(f, value, PasswordSpecialChars).WithMessage(MsgPasswordSpec),
	))
}

// ValidateConfirmPassword checks textual equality with the raw password,
// regardless of whether the password itself is valid.
func ValidateConfirmPassword(password, confirm string) Outcome {
	f := FieldConfirmPassword.String()
	return outcome(validator.EqualTo(f, confirm, password).WithMessage(MsgPasswordMatch))
}

// ValidateTerms checks that the terms were explicitly accepted.
func ValidateTerms(accepted bool) Outcome {
	f := FieldTerms.String()
	return outcome(validator.Accepted(f, accepted).WithMessage(MsgTerms))
}

// Validate runs the validator for one field of rec.
// Unknown fields are reported as Valid; callers iterate Fields().
func Validate(f Field, rec Record) Outcome {
	switch f {
	case FieldName:
		return ValidateName(rec.Name)
	case FieldEmail:
		return ValidateEmail(rec.Email)
	case FieldPhone:
		return ValidatePhone(rec.Phone)
	case FieldAge:
		return ValidateAge(rec.Age)
	case FieldURL:
		return ValidateURL(rec.URL)
	case FieldPassword:
		return ValidatePassword(rec.Password)
	case FieldConfirmPassword:
		return ValidateConfirmPassword(rec.Password, rec.ConfirmPassword)
	case FieldTerms:
		return ValidateTerms(rec.Terms)
	}
	return Valid()
}

func outcome(rule validator.Rule) Outcome {
	errs := validator.ExtractValidationErrors(validator.Apply(rule))
	if errs.IsEmpty() {
		return Valid()
	}
	return Invalid(errs[0].Message)
}

func parseAge(value string) (int64, bool) {
	return validator.ParseNonNegativeInteger(value)
}
