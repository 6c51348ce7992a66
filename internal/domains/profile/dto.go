package profile

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"kunstkamera-backend/internal/shared/patch"
	"kunstkamera-backend/internal/shared/utils"
)

// UpdateProfileRequest is a PATCH payload. Absent fields stay unchanged,
// explicit nulls clear the column.
type UpdateProfileRequest struct {
	Username  patch.Field[string] `json:"username"`
	FullName  patch.Field[string] `json:"full_name"`
	AvatarURL patch.Field[string] `json:"avatar_url"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.Validate(
		validation.Errors{
			"username": r.validateUsername(),
			"full_name": validation.Validate(
				r.FullName.Ptr(),
				validation.Length(0, 100),
			),
			"avatar_url": validation.Validate(
				r.AvatarURL.Ptr(),
				validation.Length(0, 2048),
			),
		}.Filter(),
	)
}

func (r UpdateProfileRequest) validateUsername() error {
	if !r.Username.Set || !r.Username.Valid {
		return nil
	}
	if !utils.IsValidUsername(r.Username.Value) {
		return validation.NewError(
			"validation_username",
			"username must contain only lowercase letters, digits, underscores and hyphens",
		)
	}
	if len(r.Username.Value) > 30 {
		return validation.NewError("validation_username_length", "username must be at most 30 characters")
	}
	return nil
}

// HasChanges reports whether any field is present in the payload.
func (r UpdateProfileRequest) HasChanges() bool {
	return r.Username.Set || r.FullName.Set || r.AvatarURL.Set
}
