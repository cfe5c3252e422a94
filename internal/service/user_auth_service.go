package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/ikay-store/api/internal/config"
	"github.com/ikay-store/api/internal/constants"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析用户 JWT Token
func (s *UserAuthService) ParseJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Register 注册新用户并签发 Token
func (s *UserAuthService) Register(email, password, fullName string) (*models.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", time.Time{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, "", time.Time{}, ErrWeakPassword
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if existing != nil {
		return nil, "", time.Time{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		Role:         constants.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Login 校验密码并签发 Token
func (s *UserAuthService) Login(email, password string) (*models.User, string, time.Time, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// UpdateProfileInput 个人资料更新输入
type UpdateProfileInput struct {
	FullName string
	Phone    string
	Address  string
}

// UpdateProfile 更新个人资料（邮箱不可修改）
func (s *UserAuthService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.FullName = strings.TrimSpace(input.FullName)
	user.Phone = strings.TrimSpace(input.Phone)
	user.Address = strings.TrimSpace(input.Address)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile 获取个人资料
func (s *UserAuthService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
