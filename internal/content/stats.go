package content

import "github.com/nhle/deepdetect/internal/model"

// Stats are the headline numbers on the home page.
type Stats struct {
	ActiveProjects int
	TeamSize       int
	MeanProgress   int
	TotalBudget    float64
}

// Stats computes the home-page figures from the loaded content.
func (s *Store) Stats() Stats {
	st := Stats{TeamSize: len(s.doc.Team)}
	sum := 0
	for _, p := range s.doc.Projects {
		if p.Status == model.ProjectActive {
			st.ActiveProjects++
		}
		sum += p.Progress
		st.TotalBudget += p.Budget.Total
	}
	if n := len(s.doc.Projects); n > 0 {
		st.MeanProgress = (sum + n/2) / n
	}
	return st
}
