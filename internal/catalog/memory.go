package catalog

import (
	"context"
	"strings"
)

// MemoryCatalog serves the stock AutoLib shelf from memory. It stands
// in for the hosted catalog during development and tests.
type MemoryCatalog struct {
	books []Book
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{books: shelf()}
}

func (m *MemoryCatalog) List(_ context.Context) ([]Book, error) {
	out := make([]Book, len(m.books))
	copy(out, m.books)
	return out, nil
}

func (m *MemoryCatalog) Search(_ context.Context, query string) ([]Book, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.List(context.Background())
	}

	var out []Book
	for _, b := range m.books {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Subject), query) ||
			strings.Contains(strings.ToLower(b.Description), query) {
			out = append(out, b)
		}
	}
	return out, nil
}

func shelf() []Book {
	return []Book{
		{Title: "Technical English", Subject: "English Communication", Description: "Essential English communication skills for technical professionals.", Availability: "Available"},
		{Title: "Mathematics I", Subject: "Engineering Mathematics", Description: "Calculus, differential equations and linear algebra for engineering students.", Availability: "Available"},
		{Title: "Mathematics II", Subject: "Advanced Mathematics", Description: "Complex analysis, Fourier transforms and numerical methods.", Availability: "Available"},
		{Title: "Programming For Problem Solving", Subject: "Computer Programming", Description: "Introduction to programming concepts using C.", Availability: "Available"},
		{Title: "Environmental Science", Subject: "Environmental Studies", Description: "Environmental systems, pollution control and sustainable development.", Availability: "Available"},
		{Title: "Basic Civil Engineering", Subject: "Civil Engineering", Description: "Construction materials, surveying and structural basics.", Availability: "Available"},
		{Title: "Elements of Electromagnetics", Subject: "Electrical Engineering", Description: "Electromagnetic fields, waves and their engineering applications.", Availability: "Available"},
		{Title: "Signal & System", Subject: "Electronics Engineering", Description: "Signals and systems in the time and frequency domain.", Availability: "Available"},
		{Title: "Op-Amp and Linear Integrated Circuit", Subject: "Electronics", Description: "Operational amplifiers and linear integrated circuit design.", Availability: "Available"},
		{Title: "Professional Ethics", Subject: "Ethics", Description: "Professional ethics and moral responsibility in engineering practice.", Availability: "Available"},
		{Title: "AVR Microcontroller and Embedded Systems", Subject: "Embedded Systems", Description: "Programming and interfacing of AVR microcontrollers.", Availability: "Available"},
	}
}
