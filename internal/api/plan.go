package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lunafit/lunafit-backend/internal/service"
	"github.com/lunafit/lunafit-backend/internal/types"
)

// PlanHandler handles meal-plan requests
type PlanHandler struct {
	planService service.IPlanService
	snapshots   *service.SnapshotService
}

// NewPlanHandler creates a new PlanHandler instance. The snapshot
// service may be nil when S3 is not configured.
func NewPlanHandler(planService service.IPlanService, snapshots *service.SnapshotService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		snapshots:   snapshots,
	}
}

// RegisterRoutes registers the plan routes on an authenticated group.
// generationMiddleware is applied only to the routes that run the full
// pipeline, so reads of the current plan stay cheap and unthrottled.
func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup, generationMiddleware ...gin.HandlerFunc) {
	plans := router.Group("/plans")
	{
		generate := plans.Group("")
		generate.Use(generationMiddleware...)
		generate.POST("/generate", h.GeneratePlan)
		generate.POST("/preview", h.PreviewPlan)

		plans.GET("/current", h.GetCurrentPlan)
	}
}

// GeneratePlan runs the full pipeline and persists the result.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req types.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.planService.GeneratePlan(c.Request.Context(), req.Profile, req.WorkoutPlan, req.MealPlan, req.CyclePhases, req.Intensity)
	if err != nil {
		if errors.Is(err, service.ErrPlanLengthMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan: " + err.Error()})
		return
	}

	if err := h.planService.SavePlan(c.Request.Context(), userID, req.Profile, req.WorkoutPlan, result, req.CyclePhases, req.Intensity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan: " + err.Error()})
		return
	}

	if h.snapshots != nil {
		// archiving is best-effort, the plan is already saved
		if _, err := h.snapshots.ArchivePlan(c.Request.Context(), userID, result); err != nil {
			log.Printf("[PlanHandler] failed to archive plan for user %s: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, types.GeneratePlanResponse{Result: *result})
}

// PreviewPlan runs the same pipeline without persisting, for client-side
// previews during onboarding.
func (h *PlanHandler) PreviewPlan(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		return
	}

	var req types.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.planService.GeneratePlan(c.Request.Context(), req.Profile, req.WorkoutPlan, req.MealPlan, req.CyclePhases, req.Intensity)
	if err != nil {
		if errors.Is(err, service.ErrPlanLengthMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.GeneratePlanResponse{Result: *result})
}

// GetCurrentPlan returns the stored plan for the authenticated user.
func (h *PlanHandler) GetCurrentPlan(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	plan, err := h.planService.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoPlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no meal plan found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func authenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}
