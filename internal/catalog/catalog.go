package catalog

import "sort"

// Catalog is the fixed question table of the satisfaction survey.
// It is immutable after construction.
type Catalog struct {
	questions map[int]string
	ids       []int
}

// questions are the survey items in the order they are shown to patients.
var questions = map[int]string{
	1:  "La atención en Admisión fue rápida, eficiente y claras sus dudas.",
	2:  "Información administrativa transparente y precisa.",
	3:  "Información suficiente antes del Consentimiento (incluye hospitalización).",
	4:  "Habitación y áreas cómodas, limpias y armónicas.",
	5:  "Señalización clara.",
	6:  "Instalaciones cómodas y accesibles.",
	7:  "Alimentos satisfactorios.",
	8:  "Trato respetuoso y compasivo.",
	9:  "Respeto a su privacidad.",
	10: "Respeto a costumbres, creencias y cultura.",
	11: "Información clara del médico/equipo.",
	12: "Atención a dolor y otras molestias.",
	13: "Atención segura y de calidad.",
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return New(questions)
}

// New builds a catalog from an id → text table. The table is copied.
func New(table map[int]string) *Catalog {
	c := &Catalog{
		questions: make(map[int]string, len(table)),
		ids:       make([]int, 0, len(table)),
	}
	for id, text := range table {
		c.questions[id] = text
		c.ids = append(c.ids, id)
	}
	sort.Ints(c.ids)
	return c
}

// Lookup returns the question text for id.
func (c *Catalog) Lookup(id int) (string, bool) {
	text, ok := c.questions[id]
	return text, ok
}

// Has reports whether id is a known question.
func (c *Catalog) Has(id int) bool {
	_, ok := c.questions[id]
	return ok
}

// IDs returns every question id in ascending order.
func (c *Catalog) IDs() []int {
	out := make([]int, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.ids)
}
