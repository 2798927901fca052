package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"visacrony-gateway/internal/chatbot"
)

type CatalogHandler struct {
	Catalog *chatbot.Catalog
}

func NewCatalogHandler(cat *chatbot.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

type visaTypeSummary struct {
	Key       chatbot.VisaTypeKey `json:"key"`
	Title     string              `json:"title"`
	Countries int                 `json:"countries"`
}

func (h *CatalogHandler) GetVisaTypes(c *gin.Context) {
	types := h.Catalog.Types()
	out := make([]visaTypeSummary, len(types))
	for i, t := range types {
		out[i] = visaTypeSummary{Key: t.Key, Title: t.Title, Countries: len(t.Countries)}
	}
	c.JSON(http.StatusOK, out)
}

// GetCountries lists one visa type's countries, filtered by ?q=.
func (h *CatalogHandler) GetCountries(c *gin.Context) {
	countries, err := h.Catalog.Search(chatbot.VisaTypeKey(c.Param("type")), c.Query("q"))
	if errors.Is(err, chatbot.ErrUnknownVisaType) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (h *CatalogHandler) GetCountry(c *gin.Context) {
	country, ok := h.Catalog.Country(chatbot.VisaTypeKey(c.Param("type")), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}
	c.JSON(http.StatusOK, country)
}
