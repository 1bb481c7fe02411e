package store

import "github.com/rewearhq/rewear/internal/model"

// GetAllCategories returns a copy of the category taxonomy.
func (s *Store) GetAllCategories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Category(nil), s.st.Categories...)
}

// GetCategoryByID returns the category, or nil when absent.
func (s *Store) GetCategoryByID(id string) *model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Categories {
		if s.st.Categories[i].ID == id {
			c := s.st.Categories[i]
			return &c
		}
	}
	return nil
}
