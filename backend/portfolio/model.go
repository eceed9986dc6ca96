package portfolio

import (
	"bytes"
	"encoding/json"

	"github.com/chefolio/chefolio/sharedutil"
)

// ID is a cuisine identifier. Data files may write it as a JSON string or number.
type ID string

func (i *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*i = ID(n.String())
	return nil
}

func (i ID) String() string {
	return string(i)
}

type Contact struct {
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	WhatsApp string `json:"whatsapp"`
}

type Chef struct {
	Name         string  `json:"name" validate:"required,nonblank"`
	Tagline      string  `json:"tagline"`
	Bio          string  `json:"bio"`
	ProfileImage string  `json:"profileImage"`
	Contact      Contact `json:"contact"`
}

type Dish struct {
	Name             string   `json:"name" validate:"required,nonblank"`
	Image            string   `json:"image"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Tags             []string `json:"tags"`
}

// CardTags returns the tags shown on a dish card, at most two.
func (d *Dish) CardTags() []string {
	return sharedutil.FirstN(d.Tags, 2)
}

type Cuisine struct {
	ID     ID      `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required,nonblank"`
	Order  int     `json:"order"`
	Dishes []*Dish `json:"dishes" validate:"dive,required"`
}

// Title is the heading shown above the cuisine's carousel.
func (c *Cuisine) Title() string {
	return c.Name + " Cuisine"
}

type Portfolio struct {
	Chef     Chef       `json:"chef"`
	Cuisines []*Cuisine `json:"cuisines" validate:"dive,required"`

	// Source is the path or URL the document was loaded from.
	Source string `json:"-"`
}

// WindowTitle is the title of the main window while the portfolio is shown.
func (p *Portfolio) WindowTitle() string {
	return p.Chef.Name + " - Portfolio"
}

// FindCuisine returns the cuisine with the given ID, or nil.
func (p *Portfolio) FindCuisine(id ID) *Cuisine {
	for _, c := range p.Cuisines {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (p *Portfolio) NumDishes() int {
	n := 0
	for _, c := range p.Cuisines {
		n += len(c.Dishes)
	}
	return n
}
