package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
	"github.com/OilLobbyist/silver-tracker/internal/repository/csvfile"
	"github.com/OilLobbyist/silver-tracker/internal/service/pricing"
	"github.com/OilLobbyist/silver-tracker/internal/service/stack"
	"github.com/OilLobbyist/silver-tracker/internal/service/valuation"
)

// SessionHeader carries the caller's session ID. Requests without one, or
// with one the server no longer knows, get a fresh session; the response
// always echoes the ID in effect.
const SessionHeader = "X-Stack-Session"

// StackHandler handles the inventory and pricing HTTP endpoints.
type StackHandler struct {
	prices   pricing.Source
	stacks   *stack.Service
	sessions *stack.SessionManager
	now      func() time.Time
	logger   *zap.Logger
}

// NewStackHandler constructs the HTTP handler adapter.
func NewStackHandler(prices pricing.Source, stacks *stack.Service, sessions *stack.SessionManager, logger *zap.Logger) *StackHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StackHandler{
		prices:   prices,
		stacks:   stacks,
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

// Price serves the current spot quote.
func (h *StackHandler) Price(c *gin.Context) {
	c.JSON(http.StatusOK, h.prices.Price(c.Request.Context()))
}

// GetStack returns the session's normalized inventory.
func (h *StackHandler) GetStack(c *gin.Context) {
	id, inv := h.session(c)
	h.respondStack(c, id, inv, nil)
}

// ImportStack replaces the session's stack with an uploaded CSV. The file
// arrives as multipart form field "file" or as the raw request body.
func (h *StackHandler) ImportStack(c *gin.Context) {
	id, _ := h.session(c)

	reader, err := uploadReader(c)
	if err != nil {
		h.logger.Warn("unreadable upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer reader.Close()

	var warnings []string
	table, err := csvfile.Decode(reader)
	if err != nil {
		h.logger.Warn("malformed csv upload", zap.Error(err), zap.String("session", id))
		table = models.RawTable{Columns: models.CanonicalColumns()}
		warnings = append(warnings, "uploaded file is not valid CSV; starting from an empty stack")
	}

	inv, normWarnings := h.stacks.Import(table)
	warnings = append(warnings, normWarnings...)

	h.sessions.Put(id, inv)
	h.respondStack(c, id, inv, warnings)
}

// AddItem appends one manually entered item.
func (h *StackHandler) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid item payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, inv := h.session(c)
	next := h.stacks.Add(inv, req.Item())
	h.sessions.Put(id, next)
	h.respondStack(c, id, next, nil)
}

// ReplaceStack swaps the whole stack for the edited table in the body, last
// write wins.
func (h *StackHandler) ReplaceStack(c *gin.Context) {
	var table models.RawTable
	if err := c.ShouldBindJSON(&table); err != nil {
		h.logger.Warn("invalid table payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(table.Columns) == 0 {
		table.Columns = models.CanonicalColumns()
	}

	id, _ := h.session(c)
	inv, warnings := h.stacks.Replace(table)
	h.sessions.Put(id, inv)
	h.respondStack(c, id, inv, warnings)
}

// Report serves the full dashboard payload for the session.
func (h *StackHandler) Report(c *gin.Context) {
	_, inv := h.session(c)
	quote := h.prices.Price(c.Request.Context())
	c.JSON(http.StatusOK, valuation.BuildReport(inv, quote))
}

// ExportStack streams the session's stack as a dated CSV download.
func (h *StackHandler) ExportStack(c *gin.Context) {
	_, inv := h.session(c)

	var buf bytes.Buffer
	if err := csvfile.Encode(&buf, inv); err != nil {
		h.logger.Error("failed encoding stack", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode stack"})
		return
	}

	name := csvfile.ExportFileName(h.now())
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// SampleCSV serves the starter template download.
func (h *StackHandler) SampleCSV(c *gin.Context) {
	data, err := csvfile.Sample(h.now())
	if err != nil {
		h.logger.Error("failed building sample", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sample"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+csvfile.SampleFileName+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// session resolves the caller's session, creating one when the header is
// absent or stale, and stamps the response with the ID in effect.
func (h *StackHandler) session(c *gin.Context) (string, models.Inventory) {
	id := c.GetHeader(SessionHeader)
	if id != "" {
		if inv, ok := h.sessions.Lookup(id); ok {
			c.Header(SessionHeader, id)
			return id, inv
		}
	}
	id = h.sessions.Create()
	c.Header(SessionHeader, id)
	return id, nil
}

func (h *StackHandler) respondStack(c *gin.Context, id string, inv models.Inventory, warnings []string) {
	c.JSON(http.StatusOK, gin.H{
		"session":  id,
		"items":    len(inv),
		"table":    inv.Table(),
		"warnings": warnings,
	})
}

// uploadReader finds the CSV payload: the multipart "file" field when
// present, otherwise the raw body.
func uploadReader(c *gin.Context) (io.ReadCloser, error) {
	file, err := c.FormFile("file")
	if err == nil {
		return file.Open()
	}
	return c.Request.Body, nil
}
