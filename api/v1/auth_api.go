package v1

import (
	"errors"
	"net/http"

	"postboard/api/v1/request"
	"postboard/internal/metrics"
	"postboard/model"
	"postboard/service"

	"github.com/gin-gonic/gin"
)

// AuthAPI 聚合注册与登录相关的 HTTP Handler
type AuthAPI struct {
	service *service.UserService
}

// NewAuthAPI wires the service layer into the HTTP handlers.
func NewAuthAPI(s *service.UserService) *AuthAPI {
	return &AuthAPI{service: s}
}

// Register handles new account creation.
func (a *AuthAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncRegister("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	err := a.service.Register(&model.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			metrics.IncRegister("duplicate")
		} else {
			metrics.IncRegister("error")
		}
		respondError(c, err)
		return
	}
	metrics.IncRegister("success")
	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

// Login validates credentials and returns a signed access token. Unknown
// email and wrong password produce the same response.
func (a *AuthAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	access, err := a.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.IncLogin("invalid_credentials")
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid credentials"})
			return
		}
		metrics.IncLogin("error")
		respondError(c, err)
		return
	}
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, gin.H{
		"access":  access,
		"message": "logged in",
	})
}
