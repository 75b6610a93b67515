package article

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
	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)

	// Owner only
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.createArticle)
		protected.Put("/{id}", handler.updateArticle)
		protected.Patch("/{id}", handler.patchArticle)
		protected.Delete("/{id}", handler.deleteArticle)
	})

	return router
}

// # Payload Shapes

type articleRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// fullShape demands title and body, as a creation or full replacement.
func fullShape(input articleRequest) validate.Step {
	return func() error {
		v := &validate.Validator{}

		if input.Title == nil {
			v.Custom(FieldTitle, true, "Is required")
		} else {
			v.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, TitleMaxLen)
		}

		if input.Body == nil {
			v.Custom(FieldBody, true, "Is required")
		} else {
			v.Required(FieldBody, *input.Body)
		}

		return v.Err()
	}
}

// partialShape accepts any subset of fields, but not none.
func partialShape(input articleRequest) validate.Step {
	return func() error {
		if input.Title == nil && input.Body == nil {
			return validate.RequiredError("body", "No fields to update")
		}

		v := &validate.Validator{}
		if input.Title != nil {
			v.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, TitleMaxLen)
		}
		if input.Body != nil {
			v.Required(FieldBody, *input.Body)
		}

		return v.Err()
	}
}

// # Endpoints

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	articles, total, err := handler.service.ListArticles(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
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

	article, err := handler.service.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input articleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := fullShape(input)(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), claims.UserID, *input.Title, *input.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, article)
}

func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	handler.applyChange(writer, request, fullShape)
}

func (handler *Handler) patchArticle(writer http.ResponseWriter, request *http.Request) {
	handler.applyChange(writer, request, partialShape)
}

// applyChange runs the shared decode/validate/execute sequence for PUT and
// PATCH, parameterized by the payload shape.
func (handler *Handler) applyChange(
	writer http.ResponseWriter,
	request *http.Request,
	shape func(articleRequest) validate.Step,
) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rawID := requestutil.Param(request, "id")

	var input articleRequest
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

	article, err := handler.service.UpdateArticle(request.Context(), claims.UserID, id, UpdateInput{
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.service.DeleteArticle(request.Context(), claims.UserID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
