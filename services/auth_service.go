package services

import (
	"context"
	stderrors "errors"
	"os"
	"strings"
	"time"

	"vhts/constants"
	"vhts/errors"
	"vhts/models"
	"vhts/services/logger"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserID uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// AuthService menangani registrasi dan autentikasi user dashboard
type AuthService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// HashPassword menghasilkan hash bcrypt (bergaram, iteratif) dari password
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Register membuat akun baru. Username yang sudah terdaftar menghasilkan
// AppError dengan kode USER_EXISTS, bukan kegagalan generik.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if role == "" {
		role = constants.RoleViewer
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "Username sudah terdaftar", errors.ErrUserAlreadyExists)
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal memeriksa username", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal membuat hash password", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Constraint unik bisa tetap kena saat dua registrasi bersamaan
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, errors.NewAppError(errors.ErrCodeUserExists, "Username sudah terdaftar", errors.ErrUserAlreadyExists)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal menyimpan user", err)
	}

	s.logger.Info("user %s terdaftar dengan role %s", user.Username, user.Role)
	return &user, nil
}

// Authenticate mengembalikan user jika kombinasi username/password cocok.
// Password salah dan username tidak dikenal sama-sama menghasilkan nil
// tanpa error, supaya caller tidak bisa membedakan keduanya.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal membaca user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return &user, nil
}

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY_ACCESS_TOKEN"))
}

// GenerateToken membuat token akses HS256 dengan klaim user dan role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}
