package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "kampusku_backend/internals/features/users/auth/model"
	dto "kampusku_backend/internals/features/users/auth/dto"
	service "kampusku_backend/internals/features/users/auth/service"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= REGISTER ======================= */
// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Cek email sudah terpakai atau belum
	var existing userModel.UserModel
	if err := ctl.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    email,
		Password: hashed,
		// Role default student; role staff hanya diberikan manual oleh admin
	}
	user.SetDefaultValues()

	if err := ctl.DB.Create(&user).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil", dto.AuthUserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role,
	})
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := ctl.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if !service.CheckPassword(user.Password, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, exp, err := service.IssueAccessToken(user.ID, user.UserName, user.Role)
	if err != nil {
		log.Println("[ERROR] Gagal issue token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// Set cookie supaya frontend bisa cookie-based juga
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		User: dto.AuthUserResponse{
			ID:       user.ID,
			UserName: user.UserName,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

/* ======================= LOGOUT ======================= */
// POST /api/auth/logout — token masuk blacklist sampai expiry-nya lewat
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	entry := authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: time.Now().Add(service.AccessTokenTTL),
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		msg := strings.ToLower(err.Error())
		// Token sudah pernah di-blacklist → idempotent
		if !strings.Contains(msg, "duplicate") && !strings.Contains(msg, "unique") {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	c.ClearCookie("access_token")
	return helper.Success(c, "Logout berhasil", nil)
}

/* ======================= ME ======================= */
// GET /api/u/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.AuthUserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role,
	})
}
