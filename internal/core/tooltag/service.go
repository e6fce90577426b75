// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tooltag

import (
	"context"
	"log/slog"

	"github.com/taibuivan/toolshelf/internal/platform/validate"
	"github.com/taibuivan/toolshelf/pkg/pagination"
)

type Service struct {
	repository Repository
	tools      ToolReader
	tags       TagReader
	logger     *slog.Logger
}

func NewService(repository Repository, tools ToolReader, tags TagReader, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		tools:      tools,
		tags:       tags,
		logger:     logger,
	}
}

// Input carries the ids of an association write. ID is ignored on create.
type Input struct {
	ID     int
	ToolID int
	TagID  int
}

func (service *Service) List(context context.Context, params pagination.Params) ([]*ToolTag, int, error) {
	return service.repository.List(context, params.Limit, params.Offset())
}

func (service *Service) Get(context context.Context, id int) (*ToolTag, error) {
	return service.repository.Get(context, id)
}

func (service *Service) Create(context context.Context, input Input) (*ToolTag, error) {
	validator := &validate.Validator{}
	checkReferences(validator, input)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	association, err := service.resolve(context, input)
	if err != nil {
		return nil, err
	}

	if err := service.repository.Create(context, association); err != nil {
		return nil, err
	}

	service.logger.Info("tooltag_created",
		slog.Int("tooltag_id", association.ID),
		slog.Int("tool_id", association.ToolID),
		slog.Int("tag_id", association.TagID),
	)
	return association, nil
}

func (service *Service) Update(context context.Context, input Input) (*ToolTag, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldID, input.ID < 1, "Must be a positive integer")
	checkReferences(validator, input)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	association, err := service.resolve(context, input)
	if err != nil {
		return nil, err
	}
	association.ID = input.ID

	if err := service.repository.Update(context, association); err != nil {
		return nil, err
	}

	service.logger.Info("tooltag_updated", slog.Int("tooltag_id", association.ID))
	return association, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if id < 1 {
		return validate.RequiredError(FieldID, "Must be a positive integer")
	}

	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("tooltag_deleted", slog.Int("tooltag_id", id))
	return nil
}

// resolve looks up both ends of the association and embeds their names.
// A missing tool or tag surfaces as that resource's not found error.
func (service *Service) resolve(context context.Context, input Input) (*ToolTag, error) {
	tool, err := service.tools.Get(context, input.ToolID)
	if err != nil {
		return nil, err
	}

	tag, err := service.tags.Get(context, input.TagID)
	if err != nil {
		return nil, err
	}

	return &ToolTag{
		ToolID:   tool.ID,
		TagID:    tag.ID,
		ToolName: tool.Name,
		TagName:  tag.Name,
	}, nil
}

func checkReferences(validator *validate.Validator, input Input) {
	validator.Range(FieldToolID, input.ToolID, MinReferenceID, MaxReferenceID)
	validator.Range(FieldTagID, input.TagID, MinReferenceID, MaxReferenceID)
}
