package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/QuangTung97/donation-ledger/service/checkout"
	"github.com/gin-gonic/gin"
)

const signatureHeader = "Stripe-Signature"

func (s *Server) handleWebhook(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.maxWebhookBytes)
	payload, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		abortWithError(c, http.StatusBadRequest, "read body failed")
		return
	}

	result, err := s.receiver.Handle(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received": true,
		"result":   result.String(),
	})
}

func (s *Server) handleCreateDonationSession(c *gin.Context) {
	var input checkout.DonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.builder.CreateDonationSession(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleCreateCampaignFeeSession(c *gin.Context) {
	var input checkout.FeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.builder.CreateCampaignFeeSession(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleVerifyCampaignFee(c *gin.Context) {
	result, err := s.builder.VerifyCampaignFee(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// decodeObject keeps numbers as json.Number so that amounts are never rounded through float64
func decodeObject(c *gin.Context) (map[string]interface{}, bool) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()

	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil || raw == nil {
		abortWithError(c, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return raw, true
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}
	raw, ok := decodeObject(c)
	if !ok {
		return
	}

	item, err := s.validator.UpdateItem(c.Request.Context(), callerUserID(c), itemID, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleCreateItem(c *gin.Context) {
	campaignID, ok := parseID(c, "campaign_id")
	if !ok {
		return
	}
	raw, ok := decodeObject(c)
	if !ok {
		return
	}

	item, err := s.validator.CreateItem(c.Request.Context(), callerUserID(c), campaignID, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleGetProgress(c *gin.Context) {
	campaignID, ok := parseID(c, "campaign_id")
	if !ok {
		return
	}

	result, err := s.progress.Get(c.Request.Context(), campaignID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleFeed(c *gin.Context) {
	campaignID, ok := parseID(c, "campaign_id")
	if !ok {
		return
	}
	s.feed.ServeWS(c.Writer, c.Request, campaignID)
}
