// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password shared by all seeded users.
const DefaultPassword = "password123"

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer",
	"Manager", "Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"JavaScript", "TypeScript", "Go", "Python", "HTML", "CSS", "React",
	"Node.js", "PostgreSQL", "Redis", "Docker", "Kubernetes", "GraphQL",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
	// bcrypt of DefaultPassword, computed once
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	hash, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	return &Factory{
		db:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hash),
	}
}

// CreateUser persists a user with a fake identity and the shared password.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	email := fmt.Sprintf("%s%d@%s",
		strings.ToLower(strings.ReplaceAll(name, " ", ".")),
		f.rng.Intn(10000),
		gofakeit.DomainName())

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: f.passwordHash,
		Avatar:   service.GravatarURL(email),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a developer profile for the user, with a couple of
// experience and education entries.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Status:         statuses[f.rng.Intn(len(statuses))],
		Bio:            gofakeit.Sentence(12),
		GithubUsername: gofakeit.Username(),
		Skills:         pq.StringArray(f.pickSkills(2 + f.rng.Intn(4))),
		Social: models.Social{
			Twitter:  "https://twitter.com/" + gofakeit.Username(),
			Linkedin: "https://linkedin.com/in/" + gofakeit.Username(),
		},
	}
	for _, override := range overrides {
		override(profile)
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+f.rng.Intn(3); i++ {
		if err := f.db.Create(f.buildExperience(profile)).Error; err != nil {
			return nil, err
		}
	}
	for i := 0; i < 1+f.rng.Intn(2); i++ {
		if err := f.db.Create(f.buildEducation(profile)).Error; err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// CreatePost persists a post stamped with the author's name and avatar, with
// a realistic created_at spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:      gofakeit.Paragraph(1, 2, 8, " "),
		Name:      user.Name,
		Avatar:    user.Avatar,
		UserID:    user.ID,
		CreatedAt: f.pastTime(90),
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateLike records a like; duplicate likes from the same user are skipped.
func (f *Factory) CreateLike(post *models.Post, user *models.User) error {
	like := &models.Like{PostID: post.ID, UserID: user.ID}
	err := f.db.Create(like).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate") {
		return nil
	}
	return err
}

// CreateComment persists a comment on the post.
func (f *Factory) CreateComment(post *models.Post, user *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		UserID:    user.ID,
		Text:      gofakeit.Sentence(10),
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: f.pastTime(30),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (f *Factory) buildExperience(profile *models.Profile) *models.Experience {
	from := f.pastTime(365 * 5)
	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Description: gofakeit.Sentence(8),
	}
	if f.rng.Intn(2) == 0 {
		exp.Current = true
	} else {
		to := from.Add(time.Duration(30+f.rng.Intn(365)) * 24 * time.Hour)
		exp.To = &to
	}
	return exp
}

func (f *Factory) buildEducation(profile *models.Profile) *models.Education {
	from := f.pastTime(365 * 10)
	to := from.Add(time.Duration(365*4) * 24 * time.Hour)
	return &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
		Description:  gofakeit.Sentence(6),
	}
}

func (f *Factory) pickSkills(n int) []string {
	if n > len(skillPool) {
		n = len(skillPool)
	}
	skills := make([]string, 0, n)
	for _, idx := range f.rng.Perm(len(skillPool))[:n] {
		skills = append(skills, skillPool[idx])
	}
	return skills
}

func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.rng.Intn(maxDays)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(f.rng.Intn(24)) * time.Hour).
		Add(-time.Duration(f.rng.Intn(60)) * time.Minute)
}
