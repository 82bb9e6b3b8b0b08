package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/middleware"
	"socialink/internal/services"
	"socialink/internal/transport/httpdto"
)

type PostHandler struct {
	service *services.PostService
}

func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create stores a new post for the authenticated user and returns the full
// updated feed.
func (h *PostHandler) Create(c *gin.Context) {
	var req httpdto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
		return
	}

	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("access denied", "FORBIDDEN"))
		return
	}

	posts, err := h.service.Create(c.Request.Context(), services.CreatePostInput{
		UserID:      userID,
		Description: req.Description,
		PicturePath: middleware.PicturePath(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.PostsResponse{
		Posts: httpdto.FromPostSlice(posts),
	}))
}

// Feed lists every post, newest first.
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.service.Feed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.PostsResponse{
		Posts: httpdto.FromPostSlice(posts),
	}))
}

// ByUser lists the posts of one author.
func (h *PostHandler) ByUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid user id", "INVALID_REQUEST"))
		return
	}

	posts, err := h.service.ByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.PostsResponse{
		Posts: httpdto.FromPostSlice(posts),
	}))
}

// ToggleLike flips the caller's like on a post and returns the updated post.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid post id", "INVALID_REQUEST"))
		return
	}

	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("access denied", "FORBIDDEN"))
		return
	}

	post, err := h.service.ToggleLike(c.Request.Context(), postID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromPost(post)))
}
