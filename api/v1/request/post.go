package request

// CreatePostRequest binds the multipart form fields of a new post. Image
// files are read from the form separately.
type CreatePostRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

type UpdatePostRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
