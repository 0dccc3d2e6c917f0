// file: internal/server/handlers.go
// version: 1.1.0
// guid: 84b37e72-dd7c-4666-8a1c-c3c4251064a3

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medboxlabs/medbox-reader/internal/matcher"
)

type recognizeRequest struct {
	// Text is OCR-extracted text; empty text is a valid request that yields
	// an empty recognized set.
	Text     string               `json:"text"`
	Entities []matcher.EntitySpan `json:"entities,omitempty"`
}

type recognizeResponse struct {
	PassID     string   `json:"pass_id"`
	Recognized []string `json:"recognized"`
	TokenCount int      `json:"token_count"`
}

// handleRecognize runs one matching pass over the posted text.
func (s *Server) handleRecognize(c *gin.Context) {
	var req recognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.rec.Recognize(c.Request.Context(), req.Text, req.Entities)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := result.Recognized.Names()
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, recognizeResponse{
		PassID:     result.PassID,
		Recognized: names,
		TokenCount: result.TokenCount,
	})
}

// handleVocabulary lists the canonical names of the loaded reference index.
func (s *Server) handleVocabulary(c *gin.Context) {
	records := s.rec.Index().Records()
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.CanonicalName
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(names),
		"names": names,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"vocabulary": s.rec.Index().Len(),
		"threshold":  s.rec.Threshold(),
	})
}
