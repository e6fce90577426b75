// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

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

// RegisterRoutes mounts the tool endpoints. The router must already sit behind the auth gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listTools)
	router.Post("/", handler.createTool)
	router.Post("/charge", handler.chargeTools)
	router.Get("/{id}", handler.getTool)
	router.Put("/{id}", handler.updateTool)
	router.Delete("/{id}", handler.deleteTool)
}

type nameRequest struct {
	Name string `json:"name"`
}

type chargeRequest struct {
	Tools []nameRequest `json:"tools"`
}

func (handler *Handler) listTools(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	tools, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tools, params.Meta(total))
}

func (handler *Handler) getTool(writer http.ResponseWriter, request *http.Request) {
	toolID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tool, err := handler.service.Get(request.Context(), toolID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tool)
}

func (handler *Handler) createTool(writer http.ResponseWriter, request *http.Request) {
	var input nameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tool, err := handler.service.Create(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tool)
}

func (handler *Handler) chargeTools(writer http.ResponseWriter, request *http.Request) {
	var input chargeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	names := make([]string, 0, len(input.Tools))
	for _, item := range input.Tools {
		names = append(names, item.Name)
	}

	tools, err := handler.service.Charge(request.Context(), names)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tools)
}

func (handler *Handler) updateTool(writer http.ResponseWriter, request *http.Request) {
	toolID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input nameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tool, err := handler.service.Update(request.Context(), toolID, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tool)
}

func (handler *Handler) deleteTool(writer http.ResponseWriter, request *http.Request) {
	toolID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), toolID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
