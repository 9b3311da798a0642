package handlers

import (
	"fmt"
	"time"

	"github.com/mataxelle/BilMo/internal/models"
)

// Un DTO explicite par contexte d'exposition remplace les groupes de
// sérialisation dynamiques : l'imbrication est volontairement plate pour
// casser les cycles Product↔Brand↔Category.

type Link struct {
	Href string `json:"href"`
}

type Links map[string]Link

// resourceLinks construit les relations self/update/delete d'une ressource.
// update et delete ne sont exposés que si l'appelant a le droit de muter.
func resourceLinks(resource string, id uint, canMutate bool) Links {
	href := fmt.Sprintf("/api/%s/%d", resource, id)
	links := Links{"self": {Href: href}}
	if canMutate {
		links["update"] = Link{Href: href}
		links["delete"] = Link{Href: href}
	}
	return links
}

func detailHref(resource string, id uint) string {
	return fmt.Sprintf("/api/%s/%d", resource, id)
}

// productEmbedded : champs produit sans la référence circulaire vers le
// parent (vue imbriquée sous brand/category).
type productEmbedded struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
	Available   bool    `json:"available"`
}

type refRead struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type brandRead struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Products []productEmbedded `json:"products"`
	Links    Links             `json:"_links,omitempty"`
}

type categoryRead struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Products []productEmbedded `json:"products"`
	Links    Links             `json:"_links,omitempty"`
}

type productRead struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SKU         string   `json:"sku"`
	Available   bool     `json:"available"`
	Brand       *refRead `json:"brand"`
	Category    *refRead `json:"category"`
	Links       Links    `json:"_links,omitempty"`
}

type clientRead struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Links       Links     `json:"_links,omitempty"`
}

type userRead struct {
	ID        uint      `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedBy *uint     `json:"createdBy,omitempty"`
	UpdatedBy *uint     `json:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Links     Links     `json:"_links,omitempty"`
}

type memberRead struct {
	ID        uint      `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedBy *uint     `json:"createdBy,omitempty"`
	UpdatedBy *uint     `json:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Links     Links     `json:"_links,omitempty"`
}

func newProductEmbedded(p models.Product) productEmbedded {
	return productEmbedded{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SKU:         p.SKU,
		Available:   p.Available,
	}
}

func newBrandRead(b models.Brand, admin bool) brandRead {
	products := make([]productEmbedded, len(b.Products))
	for i, p := range b.Products {
		products[i] = newProductEmbedded(p)
	}
	return brandRead{
		ID:       b.ID,
		Name:     b.Name,
		Products: products,
		Links:    resourceLinks("brand", b.ID, admin),
	}
}

func newCategoryRead(c models.Category, admin bool) categoryRead {
	products := make([]productEmbedded, len(c.Products))
	for i, p := range c.Products {
		products[i] = newProductEmbedded(p)
	}
	return categoryRead{
		ID:       c.ID,
		Name:     c.Name,
		Products: products,
		Links:    resourceLinks("category", c.ID, admin),
	}
}

func newProductRead(p models.Product, admin bool) productRead {
	read := productRead{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SKU:         p.SKU,
		Available:   p.Available,
		Links:       resourceLinks("product", p.ID, admin),
	}
	if p.Brand != nil {
		read.Brand = &refRead{ID: p.Brand.ID, Name: p.Brand.Name}
	}
	if p.Category != nil {
		read.Category = &refRead{ID: p.Category.ID, Name: p.Category.Name}
	}
	return read
}

func newClientRead(c models.Client, canMutate bool) clientRead {
	return clientRead{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Links:       resourceLinks("client", c.ID, canMutate),
	}
}

func newUserRead(u models.User, canMutate bool) userRead {
	return userRead{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		CreatedBy: u.CreatedByID,
		UpdatedBy: u.UpdatedByID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Links:     resourceLinks("user", u.ID, canMutate),
	}
}

func newMemberRead(m models.Member, canMutate bool) memberRead {
	return memberRead{
		ID:        m.ID,
		Firstname: m.Firstname,
		Lastname:  m.Lastname,
		Email:     m.Email,
		CreatedBy: m.CreatedByID,
		UpdatedBy: m.UpdatedByID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Links:     resourceLinks("member", m.ID, canMutate),
	}
}
