package tutorial

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tutorials/infras/otel"
	"tutorials/internal/domains/tutorial/model/dto"
	"tutorials/internal/domains/tutorial/service"
	"tutorials/shared"
	"tutorials/shared/constant"
	"tutorials/shared/failure"
	"tutorials/shared/validator"
	"tutorials/transport/http/response"
)

type Handler struct {
	service service.Tutorial
	otel    otel.Otel
}

func New(service service.Tutorial, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tutorials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTutorial)
		routerGroup.Get("/", handler.GetTutorials)
		routerGroup.Delete("/", handler.DeleteAllTutorials)
		routerGroup.Get("/published", handler.GetPublishedTutorials)
		routerGroup.Get("/{id}", handler.GetTutorialByID)
		routerGroup.Put("/{id}", handler.UpdateTutorial)
		routerGroup.Delete("/{id}", handler.DeleteTutorial)
	})
}

func parseID(request *http.Request) (int64, error) {
	id, err := shared.ConvertStringToID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// CreateTutorial handles the creation of a new tutorial.
// @Summary Create a new tutorial
// @Description Create a tutorial. The title is required, published defaults to false.
// @Tags Tutorial
// @Accept json
// @Produce json
// @Param request body dto.CreateTutorialRequest true "Create Tutorial Request"
// @Success 200 {object} dto.TutorialResponse
// @Failure 400 {object} response.Message
// @Failure 413 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/tutorials [post]
func (handler *Handler) CreateTutorial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTutorial")
	defer scope.End()

	req := dto.CreateTutorialRequest{}

	if err := validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestBodyMaxBytes), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tutorial")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Tutorial %d created", res.ID))

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTutorials retrieves all tutorials, optionally filtered by title.
// @Summary Get all tutorials
// @Description Retrieve every tutorial whose title contains the given text, case-insensitively.
// @Tags Tutorial
// @Produce json
// @Param title query string false "Filter by title"
// @Success 200 {array} dto.TutorialResponse
// @Failure 500 {object} response.Message
// @Router /api/tutorials [get]
func (handler *Handler) GetTutorials(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTutorials")
	defer scope.End()

	title := request.URL.Query().Get(constant.RequestParamTitle)
	scope.SetAttribute("tutorial.title", title)

	res, err := handler.service.GetAll(ctx, title)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tutorials")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPublishedTutorials retrieves the published tutorials.
// @Summary Get published tutorials
// @Tags Tutorial
// @Produce json
// @Success 200 {array} dto.TutorialResponse
// @Failure 500 {object} response.Message
// @Router /api/tutorials/published [get]
func (handler *Handler) GetPublishedTutorials(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublishedTutorials")
	defer scope.End()

	res, err := handler.service.GetPublished(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get published tutorials")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTutorialByID retrieves a tutorial by its id.
// @Summary Get a tutorial by id
// @Tags Tutorial
// @Produce json
// @Param id path int true "Tutorial ID"
// @Success 200 {object} dto.TutorialResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/tutorials/{id} [get]
func (handler *Handler) GetTutorialByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTutorialByID")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get tutorial")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateTutorial updates the given fields of a tutorial.
// @Summary Update a tutorial
// @Description Only the fields present in the body are changed.
// @Tags Tutorial
// @Accept json
// @Produce json
// @Param id path int true "Tutorial ID"
// @Param request body dto.UpdateTutorialRequest true "Update Tutorial Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 413 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/tutorials/{id} [put]
func (handler *Handler) UpdateTutorial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTutorial")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateTutorialRequest{}

	if err := validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestBodyMaxBytes), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update tutorial")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, service.MessageUpdated)
}

// DeleteTutorial deletes a tutorial by its id.
// @Summary Delete a tutorial
// @Tags Tutorial
// @Produce json
// @Param id path int true "Tutorial ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/tutorials/{id} [delete]
func (handler *Handler) DeleteTutorial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTutorial")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete tutorial")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, service.MessageDeleted)
}

// DeleteAllTutorials deletes every tutorial.
// @Summary Delete all tutorials
// @Tags Tutorial
// @Produce json
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/tutorials [delete]
func (handler *Handler) DeleteAllTutorials(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAllTutorials")
	defer scope.End()

	deleted, err := handler.service.DeleteAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete all tutorials")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("tutorial.deleted", int(deleted))

	response.WithMessage(writer, http.StatusOK, fmt.Sprintf(service.MessageDeletedAll, deleted))
}
