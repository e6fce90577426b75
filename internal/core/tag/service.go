// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/toolshelf/internal/platform/validate"
	"github.com/taibuivan/toolshelf/pkg/pagination"
	"github.com/taibuivan/toolshelf/pkg/slug"
	"github.com/taibuivan/toolshelf/pkg/textnorm"
)

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

func (service *Service) List(context context.Context, params pagination.Params) ([]*Tag, int, error) {
	return service.repository.List(context, params.Limit, params.Offset())
}

func (service *Service) Get(context context.Context, id int) (*Tag, error) {
	return service.repository.GetByID(context, id)
}

func (service *Service) GetBySlug(context context.Context, value string) (*Tag, error) {
	return service.repository.GetBySlug(context, value)
}

func (service *Service) Create(context context.Context, name string) (*Tag, error) {
	validator := &validate.Validator{}
	t := build(validator, FieldName, name)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.Create(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("tag_created", slog.Int("tag_id", t.ID), slog.String("slug", t.Slug))
	return t, nil
}

/*
Charge creates a batch of tags atomically.

Parameters:
  - context: context.Context
  - names: []string

Returns:
  - []*Tag: The created tags in request order
  - error: Validation (with the offending index), Conflict or Internal errors
*/
func (service *Service) Charge(context context.Context, names []string) ([]*Tag, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldTags, len(names) == 0, "At least one tag is required")

	tags := make([]*Tag, 0, len(names))
	for index, name := range names {
		tags = append(tags, build(validator, fmt.Sprintf("%s[%d].%s", FieldTags, index, FieldName), name))
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.CreateMany(context, tags); err != nil {
		return nil, err
	}

	service.logger.Info("tags_charged", slog.Int("count", len(tags)))
	return tags, nil
}

func (service *Service) Update(context context.Context, id int, name string) (*Tag, error) {
	validator := &validate.Validator{}
	t := build(validator, FieldName, name)
	if err := validator.Err(); err != nil {
		return nil, err
	}
	t.ID = id

	if err := service.repository.Update(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("tag_updated", slog.Int("tag_id", t.ID))
	return t, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("tag_deleted", slog.Int("tag_id", id))
	return nil
}

// build normalizes name into a Tag and records any rule it breaks under field.
func build(validator *validate.Validator, field, name string) *Tag {
	t := &Tag{Name: textnorm.Capitalize(name)}
	t.Slug = slug.From(t.Name)

	validator.Required(field, t.Name)
	validator.Custom(field, textnorm.Length(t.Name) > MaxNameLength, fmt.Sprintf("Maximum %d characters", MaxNameLength))
	validator.Custom(field, t.Name != "" && t.Slug == "", "Must contain a letter or a digit")

	return t
}
