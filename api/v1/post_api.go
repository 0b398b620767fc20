package v1

import (
	"net/http"

	"postboard/api/v1/request"
	"postboard/internal/storage"
	"postboard/middleware"
	"postboard/service"

	"github.com/gin-gonic/gin"
)

// PostAPI 聚合帖子相关的 HTTP Handler
type PostAPI struct {
	service *service.PostService
	storage storage.Storage
}

// NewPostAPI wires the service layer and attachment store into the HTTP handlers.
func NewPostAPI(s *service.PostService, store storage.Storage) *PostAPI {
	return &PostAPI{service: s, storage: store}
}

// storeImages uploads the multipart "images" files. A nil result means the
// form carried no images at all, which update handlers treat as "retain".
func (p *PostAPI) storeImages(c *gin.Context) ([]string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil, false
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, true
	}
	if len(files) > maxPostImages {
		c.JSON(http.StatusBadRequest, gin.H{"message": "too many images"})
		return nil, false
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := storeUpload(c, p.storage, fh)
		if err != nil {
			respondError(c, err)
			return nil, false
		}
		urls = append(urls, url)
	}
	return urls, true
}

// Create stores a new post owned by the acting user.
func (p *PostAPI) Create(c *gin.Context) {
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing identity"})
		return
	}
	var req request.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	images, ok := p.storeImages(c)
	if !ok {
		return
	}
	if images == nil {
		images = []string{}
	}
	post, err := p.service.Create(actorID, req.Title, req.Description, images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// List 按创建时间倒序返回全部帖子
func (p *PostAPI) List(c *gin.Context) {
	posts, err := p.service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get 根据 ID 返回单个帖子
func (p *PostAPI) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	post, err := p.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update mutates a post the acting user owns. New images replace the prior
// set entirely; an imageless form retains it.
func (p *PostAPI) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing identity"})
		return
	}
	var req request.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	images, ok := p.storeImages(c)
	if !ok {
		return
	}
	post, err := p.service.Update(id, actorID, req.Title, req.Description, images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated", "post": post})
}

// Delete removes a post the acting user owns.
func (p *PostAPI) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing identity"})
		return
	}
	if err := p.service.Delete(id, actorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
