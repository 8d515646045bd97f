package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecotrack-api/models"
	"ecotrack-api/services"
	"ecotrack-api/utils"
)

type EcoScoreController struct {
	service *services.EcoScoreService
}

func NewEcoScoreController(service *services.EcoScoreService) *EcoScoreController {
	return &EcoScoreController{service: service}
}

type SaveScoreRequest struct {
	Score     float64               `json:"score"`
	Breakdown models.ScoreBreakdown `json:"breakdown"`
}

// Calculate computes an eco score from the submitted lifestyle factors.
// Public: no identity required, nothing is persisted. Missing fields keep
// their zero value rather than failing validation.
func (ec *EcoScoreController) Calculate(c *gin.Context) {
	var input services.ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ecoScore": services.ComputeEcoScore(input),
	})
}

// Save persists a computed score with its caller-supplied breakdown.
func (ec *EcoScoreController) Save(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.SendError(c, http.StatusBadRequest, "User ID not found in token")
		return
	}

	var req SaveScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	scoreID, err := ec.service.Save(c.Request.Context(), userID, req.Score, req.Breakdown)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.SendError(c, http.StatusBadRequest, "Score must not be negative")
			return
		}
		utils.SendError(c, utils.StatusFor(err), "Error saving eco score")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Eco score saved successfully",
		"scoreId": scoreID,
	})
}

// GetHistory returns the caller's saved scores, newest first, each
// annotated with its comparison to the reference average.
func (ec *EcoScoreController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.SendError(c, http.StatusBadRequest, "User ID not found in token")
		return
	}

	entries, err := ec.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.SendError(c, utils.StatusFor(err), "Error retrieving eco scores")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ecoScores": entries,
	})
}

// Delete removes one saved score, but only if the caller owns it. A
// foreign-owned id and a nonexistent id both answer not-found.
func (ec *EcoScoreController) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.SendError(c, http.StatusBadRequest, "User ID not found in token")
		return
	}

	scoreID, err := strconv.ParseUint(c.Param("scoreId"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Score ID is required")
		return
	}

	if err := ec.service.DeleteForUser(c.Request.Context(), userID, uint(scoreID)); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Eco score not found or you do not have permission to delete it")
			return
		}
		utils.SendError(c, utils.StatusFor(err), "Error deleting eco score")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Eco score deleted successfully",
		"deletedScoreId": scoreID,
	})
}
