package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mealmax/mealmax/internal/kitchen"
)

type createMealRequest struct {
	Name       string  `json:"name" binding:"required"`
	Cuisine    string  `json:"cuisine" binding:"required"`
	Price      float64 `json:"price"`
	Difficulty string  `json:"difficulty" binding:"required"`
}

func (s *Server) createMeal(c *gin.Context) {
	var body createMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_ARGUMENT", "message": err.Error()}})
		return
	}

	meal, err := s.store.CreateMeal(c.Request.Context(), body.Name, body.Cuisine, body.Price, body.Difficulty)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (s *Server) getMealByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_ARGUMENT", "message": "id must be an integer"}})
		return
	}

	meal, err := s.store.GetMealByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (s *Server) getMealByName(c *gin.Context) {
	meal, err := s.store.GetMealByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (s *Server) deleteMeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_ARGUMENT", "message": "id must be an integer"}})
		return
	}

	if err := s.store.SoftDelete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) leaderboard(c *gin.Context) {
	sortBy := kitchen.SortKey(c.DefaultQuery("sort", string(kitchen.SortByWins)))

	entries, err := s.store.Leaderboard(c.Request.Context(), sortBy)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

func (s *Server) reset(c *gin.Context) {
	if err := s.store.Reset(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (s *Server) recentBattles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reports, err := s.store.RecentBattles(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"battles": reports})
}

type prepRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

func (s *Server) prepCombatant(c *gin.Context) {
	var body prepRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_ARGUMENT", "message": err.Error()}})
		return
	}

	var (
		meal kitchen.Meal
		err  error
	)
	switch {
	case body.ID != nil:
		meal, err = s.store.GetMealByID(c.Request.Context(), *body.ID)
	case body.Name != "":
		meal, err = s.store.GetMealByName(c.Request.Context(), body.Name)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_ARGUMENT", "message": "either id or name is required"}})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	s.battleMu.Lock()
	defer s.battleMu.Unlock()

	if err := s.model.PrepCombatant(meal); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"combatants": s.model.Combatants()})
}

func (s *Server) fight(c *gin.Context) {
	s.battleMu.Lock()
	defer s.battleMu.Unlock()

	winner, err := s.model.Battle(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"winner": winner})
}

func (s *Server) clearCombatants(c *gin.Context) {
	s.battleMu.Lock()
	defer s.battleMu.Unlock()

	s.model.ClearCombatants()
	c.JSON(http.StatusOK, gin.H{"combatants": []kitchen.Meal{}})
}

func (s *Server) combatants(c *gin.Context) {
	s.battleMu.Lock()
	defer s.battleMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"combatants": s.model.Combatants()})
}
