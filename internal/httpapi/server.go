// Package httpapi exposes the meal catalog and battle engine over HTTP.
//
// The handlers are thin: every decision lives in the kitchen and battle
// packages, and the API layer only binds requests, maps domain errors to
// status codes and serializes responses.
package httpapi

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealmax/mealmax/internal/battle"
	"github.com/mealmax/mealmax/internal/kitchen"
)

// Server wires the store and the battle model behind a gin router.
type Server struct {
	store *kitchen.Store
	model *battle.Model
	log   *slog.Logger

	// The battle model is single-session by contract; the server owns
	// that session and serializes access across requests.
	battleMu sync.Mutex
}

// NewServer creates a Server. A nil logger falls back to slog.Default.
func NewServer(store *kitchen.Store, model *battle.Model, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: store, model: model, log: log}
}

// Router builds the HTTP route table.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())

	r.GET("/api/health", s.health)

	meals := r.Group("/api/meals")
	{
		meals.POST("", s.createMeal)
		meals.GET("/:id", s.getMealByID)
		meals.DELETE("/:id", s.deleteMeal)
		meals.GET("/by-name/:name", s.getMealByName)
	}

	r.GET("/api/leaderboard", s.leaderboard)
	r.GET("/api/battles", s.recentBattles)
	r.POST("/api/reset", s.reset)

	bt := r.Group("/api/battle")
	{
		bt.POST("/prep", s.prepCombatant)
		bt.POST("/fight", s.fight)
		bt.POST("/clear", s.clearCombatants)
		bt.GET("/combatants", s.combatants)
	}

	return r
}

// Run starts the HTTP server on addr and blocks.
func (s *Server) Run(addr string) error {
	s.log.Info("http api listening", "addr", addr)
	return s.Router().Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// requestID tags every request with a correlation id, echoed back in the
// X-Request-ID header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.Must(uuid.NewV7()).String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
