package v1

import (
	"net/http"
	"time"

	"postboard/api/v1/request"
	"postboard/internal/storage"
	"postboard/service"

	"github.com/gin-gonic/gin"
)

// UserAPI 聚合用户资料相关的 HTTP Handler
type UserAPI struct {
	service *service.UserService
	storage storage.Storage
}

// NewUserAPI wires the service layer and attachment store into the HTTP handlers.
func NewUserAPI(s *service.UserService, store storage.Storage) *UserAPI {
	return &UserAPI{service: s, storage: store}
}

// List returns every user. The password hash never serializes.
func (u *UserAPI) List(c *gin.Context) {
	users, err := u.service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get 根据 ID 返回单个用户
func (u *UserAPI) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := u.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update mutates a profile from a multipart form. A supplied avatar file
// replaces the stored avatar reference; absence keeps it.
func (u *UserAPI) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req request.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	in := service.UpdateUserInput{
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		Role:           req.Role,
		Specialisation: req.Specialisation,
	}
	if req.BirthYear != "" {
		birth, err := time.Parse("2006-01-02", req.BirthYear)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid birthYear"})
			return
		}
		in.BirthYear = &birth
	}

	if fh, err := c.FormFile("avatar"); err == nil {
		url, err := storeUpload(c, u.storage, fh)
		if err != nil {
			respondError(c, err)
			return
		}
		in.AvatarURL = url
	}

	user, err := u.service.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes a user. Authored posts stay behind.
func (u *UserAPI) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := u.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
