// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listTags)
	router.Post("/", handler.createTag)
	router.Post("/charge", handler.chargeTags)
	router.Get("/by-slug/{slug}", handler.getTagBySlug)
	router.Get("/{id}", handler.getTag)
	router.Put("/{id}", handler.updateTag)
	router.Delete("/{id}", handler.deleteTag)
}

type nameRequest struct {
	Name string `json:"name"`
}

type chargeRequest struct {
	Tags []nameRequest `json:"tags"`
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	tags, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, tags, params.Meta(total))
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.Get(request.Context(), tagID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) getTagBySlug(writer http.ResponseWriter, request *http.Request) {
	t, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var input nameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.Create(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, t)
}

func (handler *Handler) chargeTags(writer http.ResponseWriter, request *http.Request) {
	var input chargeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	names := make([]string, 0, len(input.Tags))
	for _, item := range input.Tags {
		names = append(names, item.Name)
	}

	tags, err := handler.service.Charge(request.Context(), names)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tags)
}

func (handler *Handler) updateTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input nameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	t, err := handler.service.Update(request.Context(), tagID, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, t)
}

func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
