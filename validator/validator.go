package validator

import (
	"regexp"

	"vhts/constants"
	"vhts/dto"
	"vhts/errors"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// ValidateRegister memeriksa input registrasi akun
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username tidak boleh kosong", nil)
	}

	if !usernameRe.MatchString(input.Username) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Username harus 3-32 karakter alfanumerik", nil)
	}

	if input.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password tidak boleh kosong", nil)
	}

	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password minimal 6 karakter", nil)
	}

	if input.Role != "" && input.Role != constants.RoleAdmin && input.Role != constants.RoleViewer {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role harus admin atau viewer", nil)
	}

	return nil
}

// ValidateIngestForm memeriksa parameter periode upload
func ValidateIngestForm(form *dto.IngestForm) error {
	if form.Tahun < 1900 || form.Tahun > 2200 {
		return errors.NewAppError(errors.ErrCodeInvalidPeriod, "Tahun di luar rentang yang masuk akal", nil)
	}

	if form.Bulan < 1 || form.Bulan > 12 {
		return errors.NewAppError(errors.ErrCodeInvalidPeriod, "Bulan harus di antara 1 dan 12", nil)
	}

	return nil
}
