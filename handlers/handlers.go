package handlers

// handlers own the HTTP surface: request validation, the search
// transaction lifecycle, and mapping pipeline output (or failure) onto
// the response envelope.

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"songscout/pages"
	"songscout/search"
	"songscout/sentryhelper"
)

type SearchRequest struct {
	Query string `json:"query"`
}

type Manager struct {
	Service *search.Service
}

func NewManager(service *search.Service) *Manager {
	return &Manager{Service: service}
}

// RegisterRoutes wires the public surface onto the router.
func (m *Manager) RegisterRoutes(router *gin.Engine) {
	router.GET("/", m.HandleHome)
	router.GET("/healthz", m.HandleHealth)
	router.POST("/api/search", m.HandleSearch)
	router.GET("/api/search", m.HandleSearchGet)
}

// HandleSearch serves the canonical JSON-body form.
func (m *Manager) HandleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query is required and must be a non-empty string",
		})
		return
	}
	m.runSearch(c, req.Query)
}

// HandleSearchGet serves the ?q= convenience form.
func (m *Manager) HandleSearchGet(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		query = c.Query("query")
	}
	m.runSearch(c, query)
}

func (m *Manager) runSearch(c *gin.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query is required and must be a non-empty string",
		})
		return
	}

	ctx, transaction := sentryhelper.StartSearchTransaction(c.Request.Context(), query)
	defer transaction.Finish()

	// The pipeline is total over well-formed tracks; a panic here is a
	// bug, reported upstream and answered with a generic envelope.
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("search pipeline panic: %v", r)
			log.Error(err)
			sentryhelper.CaptureException(ctx, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "internal error",
			})
		}
	}()

	response := m.Service.Search(ctx, query)
	c.JSON(http.StatusOK, response)
}

func (m *Manager) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (m *Manager) HandleHome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(pages.Home))
}
