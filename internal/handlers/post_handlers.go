package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// PostHandler handles post creation and engagement endpoints
type PostHandler struct {
	postService PostServiceInterface
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService PostServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost handles POST /posts/. The author referenced by user_id must
// exist; it need not be the authenticated caller.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var create models.PostCreate
	if err := utils.DecodeAndValidate(r, &create); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	post, err := h.postService.Create(r.Context(), &create)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, post)
}

// ListPosts handles GET /posts/
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, posts)
}

// LikePost handles PUT /posts/{postID}/like/. The confirmation names the
// acting user from the resolved request identity.
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.postService.Like(r.Context(), postID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s liked post %d", actingUsername(r), postID),
	})
}

// CommentPost handles PUT /posts/{postID}/comment. Comment text arrives as
// the "comment" query parameter, with a JSON body {comment} as fallback.
func (h *PostHandler) CommentPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	comment := r.URL.Query().Get(constants.QueryParamComment)
	if comment == "" {
		var body models.PostComment
		if err := utils.DecodeJSON(r, &body); err == nil {
			comment = body.Comment
		}
	}
	if comment == "" {
		utils.BadRequest(w, constants.MsgMissingComment, nil)
		return
	}

	if err := h.postService.Comment(r.Context(), postID, comment); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s commented on post %d", actingUsername(r), postID),
	})
}

// parsePostID extracts and parses the postID path parameter
func parsePostID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constants.ParamPostID)
	postID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || postID < 1 {
		return 0, utils.NewValidationError(constants.ParamPostID, "Must be a positive integer")
	}
	return postID, nil
}

// actingUsername returns the authenticated username for confirmation messages
func actingUsername(r *http.Request) string {
	if user := auth.GetCurrentUser(r); user != nil {
		return user.Username
	}
	return "unknown"
}
