// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tooltag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/toolshelf/internal/platform/middleware"
	requestutil "github.com/taibuivan/toolshelf/internal/platform/request"
	"github.com/taibuivan/toolshelf/internal/platform/respond"
	"github.com/taibuivan/toolshelf/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the association endpoints.
//
// # Endpoints
//   - GET    /      : Paginated list
//   - POST   /      : Create from {toolId, tagId}
//   - PUT    /      : Move {id} to {toolId, tagId}
//   - DELETE /      : Remove {id}
//   - GET    /{id}  : Single association
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listToolTags)
	router.Post("/", handler.createToolTag)
	router.Put("/", handler.updateToolTag)
	router.Delete("/", handler.deleteToolTag)
	router.Get("/{id}", handler.getToolTag)
}

type writeRequest struct {
	ID     int `json:"id"`
	ToolID int `json:"toolId"`
	TagID  int `json:"tagId"`
}

type deleteRequest struct {
	ID int `json:"id"`
}

func (handler *Handler) listToolTags(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	associations, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, associations, params.Meta(total))
}

func (handler *Handler) getToolTag(writer http.ResponseWriter, request *http.Request) {
	associationID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	association, err := handler.service.Get(request.Context(), associationID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, association)
}

func (handler *Handler) createToolTag(writer http.ResponseWriter, request *http.Request) {
	var input writeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	association, err := handler.service.Create(request.Context(), Input{ToolID: input.ToolID, TagID: input.TagID})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, association)
}

func (handler *Handler) updateToolTag(writer http.ResponseWriter, request *http.Request) {
	var input writeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	association, err := handler.service.Update(request.Context(), Input(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, association)
}

func (handler *Handler) deleteToolTag(writer http.ResponseWriter, request *http.Request) {
	var input deleteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), input.ID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
