// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/platform/middleware"
	requestutil "github.com/lenahoward/inkwell/internal/platform/request"
	"github.com/lenahoward/inkwell/internal/platform/respond"
	"github.com/lenahoward/inkwell/internal/platform/validate"
	"github.com/lenahoward/inkwell/internal/users/auth"
)

// Handler implements the HTTP layer for the users resource.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the users resource endpoints.
//
// # Endpoints
//   - GET    /        : Lists member profiles (public, paginated).
//   - GET    /{id}    : Reads a single profile (public).
//   - PUT    /{id}    : Replaces the caller's identity fields.
//   - PATCH  /{id}    : Partially updates the caller's identity fields.
//   - DELETE /{id}    : Removes the caller's account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public discovery
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	// Protected mutations
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Put("/{id}", handler.update)
		r.Patch("/{id}", handler.partialUpdate)
		r.Delete("/{id}", handler.remove)
	})

	return router
}

// # Request Payloads

type updateIdentityRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// requiredUpdateShape demands both identity fields, as a full replacement.
func requiredUpdateShape(input updateIdentityRequest) validate.Step {
	return func() error {
		v := &validate.Validator{}

		if input.Username == nil {
			v.Custom(auth.FieldUsername, true, "Is required")
		} else {
			v.Required(auth.FieldUsername, *input.Username).
				MinLen(auth.FieldUsername, *input.Username, auth.UsernameMinLen).
				MaxLen(auth.FieldUsername, *input.Username, auth.UsernameMaxLen)
		}

		if input.Email == nil {
			v.Custom(auth.FieldEmail, true, "Is required")
		} else {
			v.Required(auth.FieldEmail, *input.Email).
				Email(auth.FieldEmail, *input.Email)
		}

		return v.Err()
	}
}

// partialUpdateShape accepts any subset of identity fields, but not none.
func partialUpdateShape(input updateIdentityRequest) validate.Step {
	return func() error {
		if input.Username == nil && input.Email == nil {
			return validate.RequiredError("body", "No fields to update")
		}

		v := &validate.Validator{}
		if input.Username != nil {
			v.Required(auth.FieldUsername, *input.Username).
				MinLen(auth.FieldUsername, *input.Username, auth.UsernameMinLen).
				MaxLen(auth.FieldUsername, *input.Username, auth.UsernameMaxLen)
		}
		if input.Email != nil {
			v.Required(auth.FieldEmail, *input.Email).
				Email(auth.FieldEmail, *input.Email)
		}

		return v.Err()
	}
}

// # Endpoints

/*
List returns a page of member profiles.

GET /users?page=N&limit=M

Response:
  - 200: Paginated page of profiles
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.accountService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Get returns a single member profile.

GET /users/{id}

Response:
  - 200: User profile
  - 400: Validation: id is not numeric
  - 404: ErrNotFound: No such account
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
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

	user, err := handler.accountService.GetProfile(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
Update replaces the identity fields of the caller's account.

PUT /users/{id}

Description: Both username and email are mandatory. The validation pipeline
first checks the id shape, then the payload; the first failing step
short-circuits before any storage access.

Response:
  - 200: Updated profile
  - 400: Validation failure or duplicate identity
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Missing account, or one the caller does not own
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	handler.applyIdentityChange(writer, request, requiredUpdateShape)
}

/*
PartialUpdate changes a subset of identity fields of the caller's account.

PATCH /users/{id}

Description: At least one of username or email must be present; present
fields obey the same rules as registration.

Response:
  - 200: Updated profile
  - 400: Validation failure, empty payload, or duplicate identity
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Missing account, or one the caller does not own
*/
func (handler *Handler) partialUpdate(writer http.ResponseWriter, request *http.Request) {
	handler.applyIdentityChange(writer, request, partialUpdateShape)
}

// applyIdentityChange runs the shared decode/validate/execute sequence for
// PUT and PATCH, parameterized by the payload shape.
func (handler *Handler) applyIdentityChange(
	writer http.ResponseWriter,
	request *http.Request,
	shape func(updateIdentityRequest) validate.Step,
) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rawID := requestutil.Param(request, "id")

	var input updateIdentityRequest
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

	targetID, err := requestutil.ParseID(rawID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateIdentity(request.Context(), claims.UserID, targetID, UpdateIdentityInput{
		Username: input.Username,
		Email:    input.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
Remove deletes the caller's account.

DELETE /users/{id}

Response:
  - 204: No Content: Account removed
  - 400: Validation: id is not numeric
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Missing account, or one the caller does not own
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
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

	targetID, err := requestutil.ParseID(rawID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteAccount(request.Context(), claims.UserID, targetID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
