// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with realistic development data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rng     *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates every seeded table, children before parents.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []string{"likes", "comments", "posts", "experiences", "educations", "profiles", "users"}
	for _, table := range tables {
		if err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// SeedUsers creates n users, each with a developer profile.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	log.Printf("Creating %d users with profiles...", n)
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		if _, err := s.factory.CreateProfile(user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// SeedEngagement creates numPosts posts spread across users, then sprinkles
// likes and comments so feeds look lived-in.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) (int, error) {
	if len(users) == 0 {
		return 0, fmt.Errorf("no users to seed posts for")
	}
	log.Printf("Creating %d posts with likes and comments...", numPosts)

	created := 0
	for i := 0; i < numPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return created, err
		}
		created++

		for _, liker := range s.pickUsers(users, s.rng.Intn(6)) {
			if err := s.factory.CreateLike(post, liker); err != nil {
				return created, err
			}
		}
		for _, commenter := range s.pickUsers(users, s.rng.Intn(4)) {
			if _, err := s.factory.CreateComment(post, commenter); err != nil {
				return created, err
			}
		}
	}
	return created, nil
}

// pickUsers selects up to n distinct users at random.
func (s *Seeder) pickUsers(users []*models.User, n int) []*models.User {
	if n > len(users) {
		n = len(users)
	}
	picked := make([]*models.User, 0, n)
	for _, idx := range s.rng.Perm(len(users))[:n] {
		picked = append(picked, users[idx])
	}
	return picked
}
