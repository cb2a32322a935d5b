package handlers

import (
	"investr/internal/dto"
	"investr/internal/service"
	"investr/internal/session"
	"investr/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHandler serves per-user workspaces. Submissions are tagged with a
// generation; an answer that arrives after a newer submission is dropped.
type SessionHandler struct {
	store           *session.Store
	simulations     *service.SimulationService
	recommendations *service.RecommendationService
	logger          *zap.Logger
}

func NewSessionHandler(
	store *session.Store,
	simulations *service.SimulationService,
	recommendations *service.RecommendationService,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		store:           store,
		simulations:     simulations,
		recommendations: recommendations,
		logger:          logger,
	}
}

// CreateSession godoc
// @Summary Create a workspace
// @Description Start a workspace holding the default simulation form
// @Tags sessions
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.SessionResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	ws := h.store.Create()
	h.logger.Debug("Session created", zap.String("session_id", ws.ID.String()))
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(ws, h.simulations))
}

// GetSession godoc
// @Summary Get a workspace
// @Description Form state, current rate and the last committed answers
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Security Bearer
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	ws, err := h.store.Get(id)
	if err != nil {
		return writeError(c, h.logger, "Failed to get session", err)
	}
	return c.JSON(toSessionResponse(ws, h.simulations))
}

// DeleteSession godoc
// @Summary Delete a workspace
// @Tags sessions
// @Param id path string true "Session ID"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	if err := h.store.Delete(id); err != nil {
		return writeError(c, h.logger, "Failed to delete session", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EditForm godoc
// @Summary Edit one form field
// @Description Negative or non-numeric amounts are ignored and leave the form unchanged
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.FormEditRequest true "Field edit"
// @Security Bearer
// @Success 200 {object} dto.FormEditResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/sessions/{id}/form [patch]
func (h *SessionHandler) EditForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	var req dto.FormEditRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	ws, applied, err := h.store.EditForm(id, req.Field, string(req.Value))
	if err != nil {
		return writeError(c, h.logger, "Failed to edit form", err)
	}

	return c.JSON(dto.FormEditResponse{
		Applied: applied,
		Session: toSessionResponse(ws, h.simulations),
	})
}

// SubmitSimulation godoc
// @Summary Submit the workspace form
// @Description Runs the simulation for the form as it is now. The answer is only kept if no newer submission was made meanwhile.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Security Bearer
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} dto.SubmissionResponse
// @Failure 502 {object} dto.SubmissionResponse
// @Router /api/v1/sessions/{id}/simulation [post]
func (h *SessionHandler) SubmitSimulation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	ticket, ws, err := h.store.Begin(id, session.SlotSimulation)
	if err != nil {
		return writeError(c, h.logger, "Failed to start simulation", err)
	}

	outcome, runErr := h.simulations.Run(c.Context(), ws.Form)

	status := fiber.StatusOK
	resp := dto.SubmissionResponse{Generation: ticket.Generation}
	if runErr != nil {
		status, resp.Error = userMessage(runErr)
		h.logger.Warn("Session simulation failed",
			zap.String("session_id", id.String()),
			zap.Uint64("generation", ticket.Generation),
			zap.Error(runErr),
		)
	} else {
		resp.Simulation = toSimulationResponse(outcome)
	}

	resp.Committed, err = h.store.Commit(ticket, func(ws *session.Workspace) {
		ws.Simulation = outcome
		ws.SimulationError = resp.Error
	})
	if err != nil {
		return writeError(c, h.logger, "Failed to store simulation", err)
	}
	if !resp.Committed {
		h.logger.Info("Discarding superseded simulation",
			zap.String("session_id", id.String()),
			zap.Uint64("generation", ticket.Generation),
		)
	}

	return c.Status(status).JSON(resp)
}

// SubmitRecommendation godoc
// @Summary Request a recommendation into the workspace
// @Description Scores the listing. The answer is only kept if no newer request was made meanwhile.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.RecommendationRequest true "Listing features"
// @Security Bearer
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} dto.SubmissionResponse
// @Router /api/v1/sessions/{id}/recommendation [post]
func (h *SessionHandler) SubmitRecommendation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}

	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	ticket, _, err := h.store.Begin(id, session.SlotRecommendation)
	if err != nil {
		return writeError(c, h.logger, "Failed to start recommendation", err)
	}

	advice, runErr := h.recommendations.Recommend(c.Context(), toPropertyFeatures(req))

	status := fiber.StatusOK
	resp := dto.SubmissionResponse{Generation: ticket.Generation}
	if runErr != nil {
		status, resp.Error = userMessage(runErr)
		h.logger.Warn("Session recommendation failed",
			zap.String("session_id", id.String()),
			zap.Uint64("generation", ticket.Generation),
			zap.Error(runErr),
		)
	} else {
		resp.Recommendation = toRecommendationResponse(advice)
	}

	resp.Committed, err = h.store.Commit(ticket, func(ws *session.Workspace) {
		ws.Recommendation = advice
		ws.RecommendationError = resp.Error
	})
	if err != nil {
		return writeError(c, h.logger, "Failed to store recommendation", err)
	}
	if !resp.Committed {
		h.logger.Info("Discarding superseded recommendation",
			zap.String("session_id", id.String()),
			zap.Uint64("generation", ticket.Generation),
		)
	}

	return c.Status(status).JSON(resp)
}
