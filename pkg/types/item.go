package types

import (
	"fmt"
	"strings"
)

// Item kinds, returned by Item.Kind.
const (
	KindBook     = "book"
	KindMagazine = "magazine"
	KindMovie    = "movie"
)

// Item is the closed set of things a compartment slot can hold. Book,
// Magazine, and Movie are the only implementations; the unexported
// marker method keeps the set closed, so storage and ownership
// transfer always carry one of the three concrete types.
type Item interface {
	// Info returns the identity and descriptive fields common to all
	// variants.
	Info() ItemInfo

	// Kind returns the variant name (one of the Kind constants).
	Kind() string

	// Render returns the multi-line human-readable form: the common
	// fields first, then the variant's own fields.
	Render() string

	item()
}

// ItemInfo holds the fields shared by every item variant. IDs are
// assigned by the caller and must be unique across all items ever
// added; the inventory does not generate or deduplicate them.
type ItemInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (i ItemInfo) render(b *strings.Builder) {
	fmt.Fprintf(b, "ID: %d\n", i.ID)
	fmt.Fprintf(b, "Name: %s\n", i.Name)
	fmt.Fprintf(b, "Description: %s\n", i.Description)
}

// Book is a bound volume with authorship details.
type Book struct {
	ItemInfo
	Title         string `json:"title"`
	Author        string `json:"author"`
	CopyrightDate string `json:"copyright_date"`
}

func (b Book) Info() ItemInfo { return b.ItemInfo }
func (b Book) Kind() string   { return KindBook }
func (b Book) item()          {}

func (b Book) Render() string {
	var sb strings.Builder
	b.ItemInfo.render(&sb)
	fmt.Fprintf(&sb, "Title: %s\n", b.Title)
	fmt.Fprintf(&sb, "Author: %s\n", b.Author)
	fmt.Fprintf(&sb, "Copyright Date: %s\n", b.CopyrightDate)
	return sb.String()
}

// Magazine is a periodical issue.
type Magazine struct {
	ItemInfo
	Edition string `json:"edition"`
	Title   string `json:"title"`
}

func (m Magazine) Info() ItemInfo { return m.ItemInfo }
func (m Magazine) Kind() string   { return KindMagazine }
func (m Magazine) item()          {}

func (m Magazine) Render() string {
	var sb strings.Builder
	m.ItemInfo.render(&sb)
	fmt.Fprintf(&sb, "Edition: %s\n", m.Edition)
	fmt.Fprintf(&sb, "Title: %s\n", m.Title)
	return sb.String()
}

// Movie is a film recording with its credited cast.
type Movie struct {
	ItemInfo
	Title      string   `json:"title"`
	Director   string   `json:"director"`
	MainActors []string `json:"main_actors"`
}

func (m Movie) Info() ItemInfo { return m.ItemInfo }
func (m Movie) Kind() string   { return KindMovie }
func (m Movie) item()          {}

func (m Movie) Render() string {
	var sb strings.Builder
	m.ItemInfo.render(&sb)
	fmt.Fprintf(&sb, "Title: %s\n", m.Title)
	fmt.Fprintf(&sb, "Director: %s\n", m.Director)
	sb.WriteString("Main Actors:\n")
	for _, actor := range m.MainActors {
		sb.WriteString(actor)
		sb.WriteByte('\n')
	}
	return sb.String()
}
