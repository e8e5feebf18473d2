package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/glowstudio/landing-builder/internal/auth"
	"github.com/glowstudio/landing-builder/internal/config"
	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/models"
	"github.com/glowstudio/landing-builder/internal/store"
	"github.com/glowstudio/landing-builder/internal/validators"
)

type AuthHandler struct {
	users  *store.Users
	docs   *store.Documents
	config *config.Config
}

func NewAuthHandler(users *store.Users, docs *store.Documents, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, docs: docs, config: cfg}
}

// --------- Requests ---------

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email и пароль обязательны.")
		return
	}

	email := store.NormalizeEmail(req.Email)
	if !validators.IsEmailShapeValid(email) {
		httperr.BadRequest(c, "invalid_email", "Указан некорректный email.")
		return
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Не удалось создать аккаунт.")
		return
	}

	hashed, err := auth.HashPassword(req.Password, salt)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Не удалось создать аккаунт.")
		return
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		Salt:           salt,
		HashedPassword: hashed,
		CreatedAt:      time.Now(),
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if httperr.IsBusiness(err, httperr.CodeEmailTaken) {
			httperr.Conflict(c, httperr.CodeEmailTaken, "Пользователь с таким email уже существует.")
			return
		}
		httperr.Internal(c, httperr.CodeStorageFailure, "Не удалось создать аккаунт.")
		return
	}

	// A new account starts from the default site, written durably before the
	// response goes out.
	if _, err := h.docs.Provision(c.Request.Context(), user.ID); err != nil {
		httperr.Internal(c, httperr.CodeStorageFailure, "Не удалось создать аккаунт.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Не удалось создать аккаунт.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email и пароль обязательны.")
		return
	}

	user, found, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		httperr.Internal(c, httperr.CodeStorageFailure, "Не удалось выполнить вход.")
		return
	}
	if !found || !auth.VerifyPassword(req.Password, user.Salt, user.HashedPassword) {
		httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Неверный email или пароль.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Не удалось выполнить вход.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
