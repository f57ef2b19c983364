package service

import (
	"chrono/config"
	"chrono/infras/kafka"
	"chrono/infras/otel"
	"chrono/internal/domains/event/model"
	"chrono/internal/domains/event/model/dto"
	"chrono/internal/domains/event/repository"
	"chrono/shared"
	"chrono/shared/cache"
	"chrono/shared/constant"
	gDto "chrono/shared/dto"
	"chrono/shared/failure"
	"chrono/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:gets"
	cacheCountEvent  = "event:count"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) error
	BulkCreate(ctx context.Context, req dto.BulkCreateEventsRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Event
	cfg    *config.Config
	cache  cache.RedisCache
	broker kafka.Client
	otel   otel.Otel
}

func New(repo repository.Event, cfg *config.Config, cache cache.RedisCache, broker kafka.Client, otel otel.Otel) Event {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		broker: broker,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	mod, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build event from request")

		return failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return fmt.Errorf("failed to create event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)

		s.publish(c, dto.EventActionCreated, mod)
	}()

	return nil
}

func (s *serviceImpl) BulkCreate(ctx context.Context, req dto.BulkCreateEventsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BulkCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	models, err := req.ToModels(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build events from request")

		return failure.BadRequest(err)
	}

	if err = s.repo.InsertBulk(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to bulk create events")

		return fmt.Errorf("failed to bulk create events: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)

		s.publish(c, dto.EventActionCreated, models...)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Rendered wall clocks depend on the caller's active timezone, so the
	// cache key has to carry it.
	cacheKey := shared.BuildCacheKey(shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter), timezone.FromContext(ctx).String())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for events")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	if err = res.FromModels(ctx, models, total, req.Limit); err != nil {
		log.Error().Err(err).Msg("failed to render events")

		return res, fmt.Errorf("failed to render events: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEvent, id, timezone.FromContext(ctx).String())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event")

		return res, nil
	}

	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == "" {
		return res, failure.NotFound("event not found")
	}

	if err = res.FromModel(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to render event")

		return res, fmt.Errorf("failed to render event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEventRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return fmt.Errorf("failed to get event: %w", err)
	}

	if current.ID == "" {
		log.Error().Msg("event not found")

		return failure.NotFound("event not found")
	}

	timeFields, err := req.ParseTimes(current)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse event times")

		return failure.BadRequest(err)
	}

	updatedFields := shared.TransformFields(req, user)
	for field, value := range timeFields {
		updatedFields[field] = value
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetEvent, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)

		updated, getErr := s.repo.Get(c, filter)
		if getErr != nil || updated.ID == "" {
			log.Error().Err(getErr).Str("id", id).Msg("failed to reload event for publication")

			return
		}

		s.publish(c, dto.EventActionUpdated, updated)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exist {
		log.Error().Msg("event not found")

		return failure.NotFound("event not found")
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetEvent, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, action string, models ...model.Event) {
	if !s.cfg.Kafka.Enable || s.broker == nil {
		return
	}

	messages := make([]kafka.Message, len(models))
	for i, mod := range models {
		messages[i] = kafka.Message{
			Key:   mod.ID,
			Value: dto.NewEventMessage(action, mod),
		}
	}

	if err := s.broker.SendMessages(ctx, s.cfg.Kafka.EventTopic, messages...); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to publish event messages")
	}
}
