package chatbot

import (
	"errors"
	"strings"
)

var ErrUnknownVisaType = errors.New("unknown visa type")

type VisaTypeKey string

const (
	EVisa       VisaTypeKey = "eVisa"
	StickerVisa VisaTypeKey = "stickerVisa"
	OnArrival   VisaTypeKey = "onArrival"
)

// Country is one catalog entry. VisaType is the display label ("e-Visa");
// Category is the key of the visa type it is listed under.
type Country struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	VisaType       string      `json:"visaType"`
	Category       VisaTypeKey `json:"category"`
	ProcessingDays string      `json:"processingDays"`
	VisaFees       string      `json:"visaFees"`
	ServiceFees    string      `json:"serviceFees"`
	Description    string      `json:"description"`
}

type VisaType struct {
	Key       VisaTypeKey `json:"key"`
	Title     string      `json:"title"`
	Countries []Country   `json:"countries"`
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	types []VisaType
	index map[VisaTypeKey]int
}

// NewCatalog returns the compiled-in catalog.
func NewCatalog() *Catalog {
	return newCatalog(defaultVisaTypes())
}

func newCatalog(types []VisaType) *Catalog {
	c := &Catalog{types: types, index: make(map[VisaTypeKey]int, len(types))}
	for i := range c.types {
		t := &c.types[i]
		c.index[t.Key] = i
		for j := range t.Countries {
			t.Countries[j].ID = Slug(t.Countries[j].Name)
			t.Countries[j].Category = t.Key
		}
	}
	return c
}

// Types lists the visa types in display order.
func (c *Catalog) Types() []VisaType {
	return c.types
}

func (c *Catalog) Type(key VisaTypeKey) (VisaType, error) {
	i, ok := c.index[key]
	if !ok {
		return VisaType{}, ErrUnknownVisaType
	}
	return c.types[i], nil
}

// Country finds id under the given type. An empty key searches every type
// in display order.
func (c *Catalog) Country(key VisaTypeKey, id string) (Country, bool) {
	if key != "" {
		t, err := c.Type(key)
		if err != nil {
			return Country{}, false
		}
		return findCountry(t.Countries, id)
	}
	for _, t := range c.types {
		if country, ok := findCountry(t.Countries, id); ok {
			return country, true
		}
	}
	return Country{}, false
}

func findCountry(countries []Country, id string) (Country, bool) {
	for _, country := range countries {
		if country.ID == id {
			return country, true
		}
	}
	return Country{}, false
}

// Search filters one type's countries by a case-insensitive term matched
// against every text field. An empty term returns all of them.
func (c *Catalog) Search(key VisaTypeKey, term string) ([]Country, error) {
	t, err := c.Type(key)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return t.Countries, nil
	}
	out := []Country{}
	for _, country := range t.Countries {
		for _, field := range []string{
			country.Name,
			country.VisaType,
			country.Description,
			country.ProcessingDays,
			country.VisaFees,
			country.ServiceFees,
		} {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, country)
				break
			}
		}
	}
	return out, nil
}

// Slug lower-cases name and joins its alphanumeric runs with "-".
func Slug(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
