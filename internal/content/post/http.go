package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/platform/middleware"
	requestutil "github.com/lenahoward/inkwell/internal/platform/request"
	"github.com/lenahoward/inkwell/internal/platform/respond"
	"github.com/lenahoward/inkwell/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listPosts)
	router.Get("/{id}", handler.getPost)

	// Owner only
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.createPost)
		protected.Put("/{id}", handler.updatePost)
		protected.Patch("/{id}", handler.patchPost)
		protected.Delete("/{id}", handler.deletePost)
	})

	return router
}

type postRequest struct {
	Content *string `json:"content"`
}

// contentShape demands the content field outright.
func contentShape(input postRequest) validate.Step {
	return func() error {
		v := &validate.Validator{}
		if input.Content == nil {
			v.Custom(FieldContent, true, "Is required")
		} else {
			v.Required(FieldContent, *input.Content).MaxLen(FieldContent, *input.Content, ContentMaxLen)
		}
		return v.Err()
	}
}

// partialContentShape rejects an empty payload; a present field obeys the
// same rules as creation.
func partialContentShape(input postRequest) validate.Step {
	return func() error {
		if input.Content == nil {
			return validate.RequiredError("body", "No fields to update")
		}
		v := &validate.Validator{}
		v.Required(FieldContent, *input.Content).MaxLen(FieldContent, *input.Content, ContentMaxLen)
		return v.Err()
	}
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, total, err := handler.service.ListPosts(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	rawID := requestutil.Param(request, "id")
	if err := validate.IDShape(rawID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ParseID(rawID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.GetPost(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := contentShape(input)(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.CreatePost(request.Context(), claims.UserID, *input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, post)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	handler.applyChange(writer, request, contentShape)
}

func (handler *Handler) patchPost(writer http.ResponseWriter, request *http.Request) {
	handler.applyChange(writer, request, partialContentShape)
}

func (handler *Handler) applyChange(
	writer http.ResponseWriter,
	request *http.Request,
	shape func(postRequest) validate.Step,
) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rawID := requestutil.Param(request, "id")

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	pipeline := validate.Pipeline{
		func() error { return validate.IDShape(rawID) },
		shape(input),
	}
	if err := pipeline.Run(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ParseID(rawID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.UpdatePost(request.Context(), claims.UserID, id, *input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rawID := requestutil.Param(request, "id")
	if err := validate.IDShape(rawID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ParseID(rawID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePost(request.Context(), claims.UserID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
