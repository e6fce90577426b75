// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/toolshelf/internal/platform/validate"
	"github.com/taibuivan/toolshelf/pkg/pagination"
	"github.com/taibuivan/toolshelf/pkg/textnorm"
)

// Service applies naming rules to tools before they reach the repository.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

func (service *Service) List(context context.Context, params pagination.Params) ([]*Tool, int, error) {
	return service.repository.List(context, params.Limit, params.Offset())
}

func (service *Service) Get(context context.Context, id int) (*Tool, error) {
	return service.repository.Get(context, id)
}

func (service *Service) Create(context context.Context, name string) (*Tool, error) {
	tool := &Tool{Name: textnorm.Capitalize(name)}

	validator := &validate.Validator{}
	checkName(validator, FieldName, tool.Name)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.Create(context, tool); err != nil {
		return nil, err
	}

	service.logger.Info("tool_created", slog.Int("tool_id", tool.ID), slog.String("name", tool.Name))
	return tool, nil
}

/*
Charge creates a batch of tools atomically.

Description: Every name is validated first; one bad name rejects the whole
batch with a field error pointing at its position.

Parameters:
  - context: context.Context
  - names: []string (Raw names, capitalised before storage)

Returns:
  - []*Tool: The created tools in request order
  - error: Validation, Conflict or Internal errors
*/
func (service *Service) Charge(context context.Context, names []string) ([]*Tool, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldTools, len(names) == 0, "At least one tool is required")

	tools := make([]*Tool, 0, len(names))
	for index, name := range names {
		tool := &Tool{Name: textnorm.Capitalize(name)}
		checkName(validator, fmt.Sprintf("%s[%d].%s", FieldTools, index, FieldName), tool.Name)
		tools = append(tools, tool)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.CreateMany(context, tools); err != nil {
		return nil, err
	}

	service.logger.Info("tools_charged", slog.Int("count", len(tools)))
	return tools, nil
}

func (service *Service) Update(context context.Context, id int, name string) (*Tool, error) {
	tool := &Tool{ID: id, Name: textnorm.Capitalize(name)}

	validator := &validate.Validator{}
	checkName(validator, FieldName, tool.Name)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, tool); err != nil {
		return nil, err
	}

	service.logger.Info("tool_updated", slog.Int("tool_id", tool.ID))
	return tool, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("tool_deleted", slog.Int("tool_id", id))
	return nil
}

// checkName enforces the 1..MaxNameLength rule on an already capitalised name.
func checkName(validator *validate.Validator, field, name string) {
	validator.Required(field, name)
	validator.Custom(field, textnorm.Length(name) > MaxNameLength, fmt.Sprintf("Maximum %d characters", MaxNameLength))
}
