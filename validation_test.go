package backoffice_test

import (
	"testing"

	"github.com/goliatone/go-backoffice"
	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterPayload() backoffice.RegisterPayload {
	return backoffice.RegisterPayload{
		Name:      "Laura",
		Surnames:  "Garcia Perez",
		Email:     "laura@example.com",
		Telephone: "+34612345678",
		Password:  "s3cret-pass",
		Role:      backoffice.RoleCustomer,
	}
}

func TestRegisterPayloadValid(t *testing.T) {
	require.NoError(t, validRegisterPayload().Validate())
}

func TestRegisterPayloadCollectsAllFieldErrors(t *testing.T) {
	payload := validRegisterPayload()
	payload.Name = ""
	payload.Email = "not-an-email"
	payload.Telephone = "12"

	err := payload.Validate()
	require.Error(t, err)
	assert.True(t, backoffice.IsValidation(err))

	fields := backoffice.FieldErrors(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "telephone")
	assert.NotContains(t, fields, "password", "valid fields carry no message")
}

func TestRegisterPayloadPasswordLength(t *testing.T) {
	payload := validRegisterPayload()
	payload.Password = "short"

	fields := backoffice.FieldErrors(payload.Validate())
	assert.Contains(t, fields, "password")
}

func TestRegisterPayloadRejectsUnknownRole(t *testing.T) {
	payload := validRegisterPayload()
	payload.Role = "SUPERUSER"

	fields := backoffice.FieldErrors(payload.Validate())
	assert.Contains(t, fields, "role")
}

func TestUserValidateCollectsAllFieldErrors(t *testing.T) {
	user := backoffice.User{
		Email: "bad",
		Role:  backoffice.RoleAdmin,
	}

	fields := backoffice.FieldErrors(user.Validate())
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "telephone")
	assert.NotContains(t, fields, "role")
}

func TestUserValidateRequiresRole(t *testing.T) {
	user := backoffice.User{
		Name:      "Laura",
		Surnames:  "Garcia Perez",
		Email:     "laura@example.com",
		Telephone: "+34612345678",
	}

	fields := backoffice.FieldErrors(user.Validate())
	assert.Contains(t, fields, "role")

	user.Role = backoffice.RoleStaff
	require.NoError(t, user.Validate())
}

func TestProfileUpdateRequiresCurrentPassword(t *testing.T) {
	update := backoffice.ProfileUpdate{
		User: backoffice.User{
			Name:      "Laura",
			Surnames:  "Garcia Perez",
			Email:     "laura@example.com",
			Telephone: "+34612345678",
			Role:      backoffice.RoleCustomer,
		},
	}

	err := update.Validate()
	require.Error(t, err)
	fields := backoffice.FieldErrors(err)
	assert.Equal(t, "cannot be blank", fields["currentPassword"])

	update.CurrentPassword = "s3cret-pass"
	require.NoError(t, update.Validate())
}

func TestProfileUpdateMergesFieldErrors(t *testing.T) {
	update := backoffice.ProfileUpdate{
		User: backoffice.User{
			Surnames:  "Garcia Perez",
			Email:     "laura@example.com",
			Telephone: "+34612345678",
			Role:      backoffice.RoleCustomer,
		},
	}

	fields := backoffice.FieldErrors(update.Validate())
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "currentPassword")
}

func TestValidateTelephone(t *testing.T) {
	assert.NoError(t, backoffice.ValidateTelephone("612345678"), "national format for the default region")
	assert.NoError(t, backoffice.ValidateTelephone("+34612345678"))
	assert.NoError(t, backoffice.ValidateTelephone(""), "blank passes, Required handles presence")
	assert.Error(t, backoffice.ValidateTelephone("12"))
	assert.Error(t, backoffice.ValidateTelephone("not a number"))
}

func TestFieldErrorsFromRemoteMetadata(t *testing.T) {
	// The backend reports field failures inside the error metadata; the
	// form renders them the same way as local ones
	remote := errors.New("invalid payload", errors.CategoryValidation).
		WithCode(errors.CodeBadRequest).
		WithMetadata(map[string]any{
			"fields": map[string]any{"email": "ya existe un usuario con ese email"},
		})

	fields := backoffice.FieldErrors(remote)
	assert.Equal(t, "ya existe un usuario con ese email", fields["email"])
}

func TestFieldErrorsNilCases(t *testing.T) {
	assert.Nil(t, backoffice.FieldErrors(nil))
	assert.Nil(t, backoffice.FieldErrors(backoffice.ErrRemoteUnavailable))
}
