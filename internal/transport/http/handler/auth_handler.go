package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"repair-tracker/internal/apperr"
	"repair-tracker/internal/core/auth"
	"repair-tracker/internal/domain"
	"repair-tracker/internal/transport/http/middleware"
	"repair-tracker/internal/transport/http/response"
	"repair-tracker/pkg/utils"
)

type AuthHandler struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthHandler(users domain.UserRepository, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and immediately issues a token, same as a login.
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, bindErr(err, "Missing required fields"))
		return
	}
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		response.Fail(c, apperr.Validation("Missing required fields"))
		return
	}

	if existing, err := h.users.FindByUsername(in.Username); err != nil {
		response.Fail(c, apperr.Internal("lookup user", err))
		return
	} else if existing != nil {
		response.Fail(c, apperr.Conflict("Username already exists"))
		return
	}
	if existing, err := h.users.FindByEmail(in.Email); err != nil {
		response.Fail(c, apperr.Internal("lookup user", err))
		return
	} else if existing != nil {
		response.Fail(c, apperr.Conflict("Email already exists"))
		return
	}

	u := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
	}
	if err := h.users.Create(u); err != nil {
		// unique index races: two registrations passing the pre-check together
		if isDupKey(err) {
			response.Fail(c, apperr.Conflict("Username already exists"))
			return
		}
		response.Fail(c, apperr.Internal("create user", err))
		return
	}

	tok, err := h.jwter.Issue(u.ID)
	if err != nil {
		response.Fail(c, apperr.Internal("issue token", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": tok, "user": u})
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login deliberately reports unknown user and wrong password identically.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, bindErr(err, "Missing username or password"))
		return
	}
	if in.Username == "" || in.Password == "" {
		response.Fail(c, apperr.Validation("Missing username or password"))
		return
	}

	u, err := h.users.FindByUsername(in.Username)
	if err != nil {
		response.Fail(c, apperr.Internal("lookup user", err))
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		response.Fail(c, apperr.Auth("Invalid credentials"))
		return
	}

	tok, err := h.jwter.Issue(u.ID)
	if err != nil {
		response.Fail(c, apperr.Internal("issue token", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok, "user": u})
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, apperr.Auth("unauthorized"))
		return
	}
	u, err := h.users.FindByID(uid)
	if err != nil {
		response.Fail(c, apperr.Internal("lookup user", err))
		return
	}
	if u == nil {
		response.Fail(c, apperr.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, u)
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
