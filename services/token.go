package services

import (
	"vhts/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserRoleFromToken memverifikasi signature token akses lalu mengambil
// userID dan role dari claims. Token yang ditandatangani dengan kunci lain
// atau metode selain HMAC langsung ditolak.
func GetUserRoleFromToken(tokenString string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Metode signing token tidak dikenali", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token tidak valid", err)
	}
	if !token.Valid {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token tidak valid", errors.ErrUnauthorized)
	}
	if claims.UserInfo.Role == "" {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Role tidak ditemukan di token", nil)
	}
	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}
