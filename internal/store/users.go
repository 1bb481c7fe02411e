package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/rewearhq/rewear/internal/model"
)

// Registration defaults.
const (
	defaultStartingPoints = 100
	defaultRating         = 5.0
)

// NewUser carries the caller-supplied fields for registration.
type NewUser struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	Points       int
	Avatar       string
	Location     string
	Newsletter   bool
}

// CreateUser registers a user, applying defaults for role, points, avatar
// and rating. The email must not already be registered (exact match).
func (s *Store) CreateUser(ctx context.Context, nu NewUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Users {
		if s.st.Users[i].Email == nu.Email {
			return nil, ErrEmailTaken
		}
	}

	u := model.User{
		ID:           s.generateID(),
		FirstName:    nu.FirstName,
		LastName:     nu.LastName,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		Role:         nu.Role,
		Points:       nu.Points,
		Avatar:       nu.Avatar,
		Location:     nu.Location,
		CreatedAt:    time.Now(),
		Newsletter:   nu.Newsletter,
		Rating:       defaultRating,
		TotalSwaps:   0,
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if u.Points == 0 {
		u.Points = defaultStartingPoints
	}
	if u.Avatar == "" {
		u.Avatar = defaultAvatars[len(s.st.Users)%len(defaultAvatars)]
	}

	s.st.Users = append(s.st.Users, u)
	s.save(ctx)
	return &u, nil
}

// GetUserByID returns the user, or nil when absent.
func (s *Store) GetUserByID(id string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Users {
		if s.st.Users[i].ID == id {
			u := s.st.Users[i]
			return &u
		}
	}
	return nil
}

// GetUserByEmail returns the first user with the given email (exact,
// case-sensitive match), or nil when absent.
func (s *Store) GetUserByEmail(email string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Users {
		if s.st.Users[i].Email == email {
			u := s.st.Users[i]
			return &u
		}
	}
	return nil
}

// GetAllUsers returns a copy of the user collection.
func (s *Store) GetAllUsers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.st.Users...)
}

// UpdateUser applies the patch to the matched user and returns the updated
// record, or nil when the id is unknown.
func (s *Store) UpdateUser(ctx context.Context, id string, patch model.UserPatch) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Users {
		if s.st.Users[i].ID == id {
			patch.Apply(&s.st.Users[i])
			s.save(ctx)
			u := s.st.Users[i]
			return &u
		}
	}
	return nil
}

// UpdateUserPoints applies delta to the user's balance, clamping at zero.
// The second return value distinguishes a missing user from a zero balance.
func (s *Store) UpdateUserPoints(ctx context.Context, id string, delta int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatePointsLocked(ctx, id, delta)
}

func (s *Store) updatePointsLocked(ctx context.Context, id string, delta int) (int, bool) {
	for i := range s.st.Users {
		if s.st.Users[i].ID == id {
			s.st.Users[i].Points = max(0, s.st.Users[i].Points+delta)
			s.save(ctx)
			return s.st.Users[i].Points, true
		}
	}
	return 0, false
}

// AwardPoints credits points to the user and logs the reason. Amounts are
// assumed positive by convention.
func (s *Store) AwardPoints(ctx context.Context, id string, amount int, reason string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Users {
		if s.st.Users[i].ID == id {
			s.st.Users[i].Points += amount
			s.save(ctx)
			slog.Info("points awarded",
				"user", s.st.Users[i].Email, "amount", amount, "reason", reason)
			return s.st.Users[i].Points, true
		}
	}
	return 0, false
}

// defaultAvatars are assigned round-robin to users who register without one.
var defaultAvatars = []string{
	"https://images.rewear.example/avatars/01.jpg",
	"https://images.rewear.example/avatars/02.jpg",
	"https://images.rewear.example/avatars/03.jpg",
	"https://images.rewear.example/avatars/04.jpg",
	"https://images.rewear.example/avatars/05.jpg",
	"https://images.rewear.example/avatars/06.jpg",
}
