package backoffice

import (
	stderrors "errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is the region used to interpret telephone numbers
// entered without a country prefix.
var DefaultPhoneRegion = "ES"

// Validate runs the signup schema. Every rule is evaluated so the form can
// show all offending fields at once.
func (r RegisterPayload) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Surnames, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Telephone, validation.Required, validation.By(ValidateTelephone)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.Role, validation.By(ValidateRole)),
	))
}

// Validate runs the edit schema over a full user payload
func (u User) Validate() error {
	return asValidationError(validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&u.Surnames, validation.Required, validation.Length(1, 200)),
		validation.Field(&u.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&u.Telephone, validation.Required, validation.By(ValidateTelephone)),
		validation.Field(&u.Role, validation.Required, validation.By(ValidateRole)),
	))
}

// ProfileUpdate is the self-service edit payload: the user's own fields
// plus the current password the backend re-authenticates with.
type ProfileUpdate struct {
	User            User
	CurrentPassword string
}

// Validate runs the edit schema plus the re-authentication requirement
func (p ProfileUpdate) Validate() error {
	fields := FieldErrors(p.User.Validate())

	if p.CurrentPassword == "" {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["currentPassword"] = "cannot be blank"
	}

	if len(fields) == 0 {
		return nil
	}

	metadata := make(map[string]any, len(fields))
	for field, message := range fields {
		metadata[field] = message
	}

	return goerrors.New("invalid payload", goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest).
		WithMetadata(map[string]any{"fields": metadata})
}

// ValidateRole is an ozzo rule accepting members of the role enumeration.
// Blank values pass, pair with validation.Required where the role is
// mandatory.
func ValidateRole(value any) error {
	role, _ := value.(string)
	if role == "" {
		return nil
	}
	if !IsValidRole(Role(role)) {
		return fmt.Errorf("must be one of %v", AllRoles())
	}
	return nil
}

// ValidateTelephone is an ozzo rule checking the number parses as a valid
// phone number for DefaultPhoneRegion.
func ValidateTelephone(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	number, err := phonenumbers.Parse(raw, DefaultPhoneRegion)
	if err != nil {
		return stderrors.New("must be a valid telephone number")
	}

	if !phonenumbers.IsValidNumber(number) {
		return stderrors.New("must be a valid telephone number")
	}

	return nil
}

// FieldErrors flattens a validation failure into a field to message
// mapping for display. It understands both local ozzo errors and remote
// validation envelopes carried in error metadata; anything else yields
// nil.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if stderrors.As(err, &verrs) {
		return flattenOzzo(verrs)
	}

	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return nil
	}

	if richErr.Source != nil {
		if fields := FieldErrors(richErr.Source); len(fields) > 0 {
			return fields
		}
	}

	raw, ok := richErr.Metadata["fields"]
	if !ok {
		return nil
	}

	switch fields := raw.(type) {
	case map[string]string:
		return fields
	case map[string]any:
		out := make(map[string]string, len(fields))
		for field, message := range fields {
			out[field] = fmt.Sprintf("%v", message)
		}
		return out
	default:
		return nil
	}
}

func flattenOzzo(verrs validation.Errors) map[string]string {
	out := make(map[string]string, len(verrs))
	for field, err := range verrs {
		if nested, ok := err.(validation.Errors); ok {
			for nestedField, nestedErr := range flattenOzzo(nested) {
				out[field+"."+nestedField] = nestedErr
			}
			continue
		}
		out[field] = err.Error()
	}
	return out
}

func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if stderrors.As(err, &verrs) {
		rich := goerrors.Wrap(err, goerrors.CategoryValidation, "invalid payload").
			WithCode(goerrors.CodeBadRequest)
		fields := make(map[string]any, len(verrs))
		for field, message := range flattenOzzo(verrs) {
			fields[field] = message
		}
		return rich.WithMetadata(map[string]any{"fields": fields})
	}

	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid payload").
		WithCode(goerrors.CodeBadRequest)
}
