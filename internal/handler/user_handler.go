package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/services"
	"socialink/internal/transport/httpdto"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get returns a single user profile.
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid user id", "INVALID_REQUEST"))
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromUser(u)))
}

// GetFriends resolves a user's friend list to profile summaries.
func (h *UserHandler) GetFriends(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid user id", "INVALID_REQUEST"))
		return
	}

	friends, err := h.service.GetFriends(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FriendsResponse{
		Friends: httpdto.FromFriendSlice(friends),
	}))
}

// ToggleFriend adds or removes a friendship. Only the authenticated user may
// change their own friend list; the change applies to both sides.
func (h *UserHandler) ToggleFriend(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid user id", "INVALID_REQUEST"))
		return
	}
	friendID, err := primitive.ObjectIDFromHex(c.Param("friendId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid friend id", "INVALID_REQUEST"))
		return
	}

	actorID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok || actorID != userID {
		c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("forbidden", "FORBIDDEN"))
		return
	}

	friends, err := h.service.ToggleFriend(c.Request.Context(), userID, friendID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FriendsResponse{
		Friends: httpdto.FromFriendSlice(friends),
	}))
}
