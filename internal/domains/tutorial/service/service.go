package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Tutorial=MockTutorialService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"tutorials/config"
	"tutorials/infras/otel"
	"tutorials/internal/domains/tutorial/model"
	"tutorials/internal/domains/tutorial/model/dto"
	"tutorials/internal/domains/tutorial/repository"
	"tutorials/shared"
	"tutorials/shared/cache"
	"tutorials/shared/constant"
	gDto "tutorials/shared/dto"
	"tutorials/shared/failure"
)

const (
	cacheKeyGet       = "tutorial:get"
	cacheKeyGets      = "tutorial:gets"
	cacheKeyPublished = "tutorial:published"
)

const (
	MessageUpdated    = "Tutorial was updated successfully."
	MessageDeleted    = "Tutorial was deleted successfully!"
	MessageDeletedAll = "%d Tutorials were deleted successfully!"
)

type Tutorial interface {
	Create(ctx context.Context, req dto.CreateTutorialRequest) (dto.TutorialResponse, error)
	GetAll(ctx context.Context, title string) ([]dto.TutorialResponse, error)
	GetPublished(ctx context.Context) ([]dto.TutorialResponse, error)
	Get(ctx context.Context, id int64) (dto.TutorialResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateTutorialRequest) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo  repository.Tutorial
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Tutorial, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Tutorial {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func titleFilter(title string) gDto.FilterGroup {
	if title == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Value:    title,
				Operator: gDto.FilterOperatorLike,
				Table:    model.TableName,
			},
		},
	}
}

func publishedFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPublished,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func notFound(id int64) error {
	return failure.NotFound(fmt.Sprintf("Cannot find Tutorial with id=%d.", id)) // nolint:wrapcheck
}

// fromCache reports whether key was found and decoded into value. Misses and cache errors both
// fall through to the database.
func (s *serviceImpl) fromCache(ctx context.Context, key string, value any) bool {
	err := s.cache.Get(ctx, key, value)
	if err == nil {
		return true
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("failed to read tutorial cache")
	}

	return false
}

func (s *serviceImpl) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to save tutorial cache")
	}
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheKeyGets)
	shared.InvalidateCaches(ctx, s.cache, cacheKeyPublished)
}

func (s *serviceImpl) invalidateOne(ctx context.Context, id int64) {
	key := shared.BuildCacheKey(cacheKeyGet, id)
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to invalidate tutorial cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTutorialRequest) (res dto.TutorialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tutorial, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create tutorial")

		return res, fmt.Errorf("failed to create tutorial: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(tutorial)

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, key string, filter gDto.FilterGroup) ([]dto.TutorialResponse, error) {
	var res []dto.TutorialResponse
	if s.fromCache(ctx, key, &res) && res != nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	res = dto.FromModels(models)

	s.toCache(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, title string) (res []dto.TutorialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := titleFilter(title)

	res, err = s.list(ctx, shared.BuildCacheKeyWithFilter(cacheKeyGets, filter), filter)
	if err != nil {
		log.Error().Err(err).Str("title", title).Msg("failed to get tutorials")

		return nil, fmt.Errorf("failed to get tutorials: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetPublished(ctx context.Context) (res []dto.TutorialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublished")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := publishedFilter()

	res, err = s.list(ctx, shared.BuildCacheKeyWithFilter(cacheKeyPublished, filter), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get published tutorials")

		return nil, fmt.Errorf("failed to get published tutorials: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TutorialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(cacheKeyGet, id)
	if s.fromCache(ctx, key, &res) && res.ID == id {
		return res, nil
	}

	tutorial, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get tutorial")

		return res, fmt.Errorf("failed to get tutorial: %w", err)
	}

	if tutorial.ID == 0 {
		return res, notFound(id)
	}

	res.FromModel(tutorial)

	s.toCache(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateTutorialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.EmptyUpdateRequest
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return failure.BadRequestFromString("title can not be empty") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	affected, err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update tutorial")

		return fmt.Errorf("failed to update tutorial: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("Cannot update Tutorial with id=%d. Maybe Tutorial was not found!", id)) // nolint:wrapcheck
	}

	s.invalidateOne(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete tutorial")

		return fmt.Errorf("failed to delete tutorial: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("Cannot delete Tutorial with id=%d. Maybe Tutorial was not found!", id)) // nolint:wrapcheck
	}

	s.invalidateOne(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteAll(ctx context.Context) (deleted int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err = s.repo.DeleteAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete all tutorials")

		return 0, fmt.Errorf("failed to delete all tutorials: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheKeyGet)
	s.invalidateLists(ctx)

	return deleted, nil
}
