package service

import (
	"context"
	"strings"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/github"
	"devconnect/internal/models"
	"devconnect/internal/repository"

	"github.com/lib/pq"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	githubAPI   github.Client
}

type UpsertProfileInput struct {
	UserID         uint
	Status         string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

type AddExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type AddEducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

func NewProfileService(profileRepo repository.ProfileRepository, githubAPI github.Client) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		githubAPI:   githubAPI,
	}
}

// SplitSkills turns a comma-separated skill list into trimmed entries,
// dropping empties.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func (s *ProfileService) GetCurrentProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return nil, models.NewNotFoundError("There is no profile for this user")
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetProfileByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// UpsertProfile creates the caller's profile or updates the fields present in
// the input. Omitted optional fields keep their stored values.
func (s *ProfileService) UpsertProfile(ctx context.Context, input UpsertProfileInput) (*models.Profile, error) {
	var fields []models.FieldError
	if strings.TrimSpace(input.Status) == "" {
		fields = append(fields, models.FieldError{Field: "status", Message: "Status is required"})
	}
	if len(input.Skills) == 0 {
		fields = append(fields, models.FieldError{Field: "skills", Message: "Skills is required"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	existing, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); !ok || appErr.Code != "NOT_FOUND" {
			return nil, err
		}
		existing = nil
	}

	if existing == nil {
		profile := &models.Profile{
			UserID: input.UserID,
			Status: input.Status,
			Skills: pq.StringArray(input.Skills),
		}
		applyOptional(&profile.Company, input.Company)
		applyOptional(&profile.Website, input.Website)
		applyOptional(&profile.Location, input.Location)
		applyOptional(&profile.Bio, input.Bio)
		applyOptional(&profile.GithubUsername, input.GithubUsername)
		applyOptional(&profile.Social.Youtube, input.Youtube)
		applyOptional(&profile.Social.Twitter, input.Twitter)
		applyOptional(&profile.Social.Facebook, input.Facebook)
		applyOptional(&profile.Social.Linkedin, input.Linkedin)
		applyOptional(&profile.Social.Instagram, input.Instagram)
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return s.profileRepo.GetByUserID(ctx, input.UserID)
	}

	updates := map[string]any{
		"status": input.Status,
		"skills": pq.StringArray(input.Skills),
	}
	putOptional(updates, "company", input.Company)
	putOptional(updates, "website", input.Website)
	putOptional(updates, "location", input.Location)
	putOptional(updates, "bio", input.Bio)
	putOptional(updates, "github_username", input.GithubUsername)
	putOptional(updates, "social_youtube", input.Youtube)
	putOptional(updates, "social_twitter", input.Twitter)
	putOptional(updates, "social_facebook", input.Facebook)
	putOptional(updates, "social_linkedin", input.Linkedin)
	putOptional(updates, "social_instagram", input.Instagram)

	if err := s.profileRepo.Update(ctx, input.UserID, updates); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, input.UserID)
}

func applyOptional(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func putOptional(updates map[string]any, column string, src *string) {
	if src != nil {
		updates[column] = *src
	}
}

// AddExperience prepends a work history entry and returns the refreshed
// profile.
func (s *ProfileService) AddExperience(ctx context.Context, input AddExperienceInput) (*models.Profile, error) {
	var fields []models.FieldError
	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, models.FieldError{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(input.Company) == "" {
		fields = append(fields, models.FieldError{Field: "company", Message: "Company is required"})
	}
	if input.From.IsZero() {
		fields = append(fields, models.FieldError{Field: "from", Message: "From date is required"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}
	cache.InvalidateProfile(ctx, input.UserID)
	return s.profileRepo.GetByUserID(ctx, input.UserID)
}

func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	cache.InvalidateProfile(ctx, userID)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation prepends an education entry and returns the refreshed profile.
func (s *ProfileService) AddEducation(ctx context.Context, input AddEducationInput) (*models.Profile, error) {
	var fields []models.FieldError
	if strings.TrimSpace(input.School) == "" {
		fields = append(fields, models.FieldError{Field: "school", Message: "School is required"})
	}
	if strings.TrimSpace(input.Degree) == "" {
		fields = append(fields, models.FieldError{Field: "degree", Message: "Degree is required"})
	}
	if strings.TrimSpace(input.FieldOfStudy) == "" {
		fields = append(fields, models.FieldError{Field: "fieldofstudy", Message: "Field of study is required"})
	}
	if input.From.IsZero() {
		fields = append(fields, models.FieldError{Field: "from", Message: "From date is required"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}
	cache.InvalidateProfile(ctx, input.UserID)
	return s.profileRepo.GetByUserID(ctx, input.UserID)
}

func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	cache.InvalidateProfile(ctx, userID)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GithubRepos proxies the user's latest public repositories. Any upstream
// failure is reported as a missing Github profile.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]github.Repo, error) {
	repos, err := s.githubAPI.ListRepos(ctx, username)
	if err != nil {
		return nil, models.NewNotFoundError("No Github profile found")
	}
	return repos, nil
}
