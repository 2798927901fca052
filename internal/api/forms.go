package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"visacrony-gateway/internal/channel"
	"visacrony-gateway/internal/enquiry"
)

type FormHandler struct {
	Service *enquiry.Service
}

func NewFormHandler(svc *enquiry.Service) *FormHandler {
	return &FormHandler{Service: svc}
}

// FormResponse carries the notice and the links the browser must open, in
// order, each DelayMS after the first.
type FormResponse struct {
	*enquiry.Result
	Links []channel.Link `json:"links"`
}

func handleForm[T any](submit func(ctx context.Context, o channel.Opener, rec T) (*enquiry.Result, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec T
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		links := channel.NewLinkCollector()
		res, err := submit(c.Request.Context(), links, rec)
		if err != nil {
			var verr *enquiry.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": verr.Fields})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, FormResponse{Result: res, Links: links.Links()})
	}
}

func (h *FormHandler) VisaEnquiry() gin.HandlerFunc {
	return handleForm(h.Service.SubmitVisaEnquiry)
}

func (h *FormHandler) GeneralEnquiry() gin.HandlerFunc {
	return handleForm(h.Service.SubmitGeneralEnquiry)
}

func (h *FormHandler) FreshPassport() gin.HandlerFunc {
	return handleForm(h.Service.SubmitFreshPassport)
}

func (h *FormHandler) PassportRenewal() gin.HandlerFunc {
	return handleForm(h.Service.SubmitPassportRenewal)
}
