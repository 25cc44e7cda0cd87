package server

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// skillsField accepts skills either as a JSON array or as a single
// comma-separated string, the way the original web client sends them.
type skillsField []string

func (f *skillsField) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = service.SplitSkills(raw)
	return nil
}

// flexDate accepts RFC 3339 timestamps or plain yyyy-mm-dd dates.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *flexDate) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// respondProfileError downgrades missing-profile errors to 400, which is what
// the original API returned and what its client checks for.
func respondProfileError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	return respondServiceError(c, err)
}

// GetCurrentProfile handles GET /api/profile/me
func (s *Server) GetCurrentProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetCurrentProfile(c.Context(), currentUserID(c))
	if err != nil {
		return respondProfileError(c, err)
	}
	return c.JSON(profile)
}

// GetProfiles handles GET /api/profile
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUserID handles GET /api/profile/user/:userId
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := s.parseUserID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetProfileByUserID(c.Context(), userID)
	if err != nil {
		return respondProfileError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile. It creates the caller's profile or
// updates the provided fields in place.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req struct {
		Company        *string     `json:"company"`
		Website        *string     `json:"website"`
		Location       *string     `json:"location"`
		Bio            *string     `json:"bio"`
		Status         string      `json:"status"`
		GithubUsername *string     `json:"githubusername"`
		Skills         skillsField `json:"skills"`
		Youtube        *string     `json:"youtube"`
		Twitter        *string     `json:"twitter"`
		Facebook       *string     `json:"facebook"`
		Linkedin       *string     `json:"linkedin"`
		Instagram      *string     `json:"instagram"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpsertProfile(c.Context(), service.UpsertProfileInput{
		UserID:         currentUserID(c),
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience handles PUT /api/profile/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req struct {
		Title       string    `json:"title"`
		Company     string    `json:"company"`
		Location    string    `json:"location"`
		From        flexDate  `json:"from"`
		To          *flexDate `json:"to"`
		Current     bool      `json:"current"`
		Description string    `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.Context(), service.AddExperienceInput{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From.Time,
		To:          req.To.ptr(),
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return respondProfileError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:id
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, err := s.parseEntryID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteExperience(c.Context(), currentUserID(c), expID)
	if err != nil {
		return respondProfileError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req struct {
		School       string    `json:"school"`
		Degree       string    `json:"degree"`
		FieldOfStudy string    `json:"fieldofstudy"`
		From         flexDate  `json:"from"`
		To           *flexDate `json:"to"`
		Current      bool      `json:"current"`
		Description  string    `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.Context(), service.AddEducationInput{
		UserID:       currentUserID(c),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From.Time,
		To:           req.To.ptr(),
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return respondProfileError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:id
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := s.parseEntryID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteEducation(c.Context(), currentUserID(c), eduID)
	if err != nil {
		return respondProfileError(c, err)
	}
	return c.JSON(profile)
}

// GetGithubRepos handles GET /api/profile/github/:username
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("No Github profile found"))
	}

	repos, err := s.profileService.GithubRepos(c.Context(), username)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(repos)
}
