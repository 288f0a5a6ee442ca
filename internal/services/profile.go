package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
	"github.com/google/uuid"
)

// Default values for a freshly created profile.
const (
	defaultProfileName  = "Mihir Patel"
	defaultProfileTitle = "FullStack Developer (MERN)"
	defaultProfileBio   = "Passionate about building intelligent applications with AI, ML, and modern web technologies. Always exploring the edge of innovation."
)

// ProfileRepository defines persistence operations for the profile singleton.
type ProfileRepository interface {
	Get(ctx context.Context) (types.Profile, error)
	Create(ctx context.Context, profile types.Profile) (types.Profile, error)
	Update(ctx context.Context, profile types.Profile) (types.Profile, error)
}

// BlobStore stores uploaded files and exposes their public URLs.
// Implemented by storage.Storage.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// ProfileService encapsulates profile use-cases, including resume uploads.
type ProfileService struct {
	repo  ProfileRepository
	blobs BlobStore
}

// NewProfileService constructs a ProfileService. blobs may be nil when
// resume uploads are not served.
func NewProfileService(repo ProfileRepository, blobs BlobStore) *ProfileService {
	return &ProfileService{repo: repo, blobs: blobs}
}

// Get returns the profile, creating the default one on first read.
func (s *ProfileService) Get(ctx context.Context) (types.Profile, error) {
	profile, err := s.repo.Get(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return types.Profile{}, err
	}
	return s.repo.Create(ctx, defaultProfile())
}

// Update applies the non-nil fields of the patch and returns the
// post-update record.
func (s *ProfileService) Update(ctx context.Context, patch types.ProfileUpdate) (types.Profile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return types.Profile{}, err
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Title != nil {
		profile.Title = *patch.Title
	}
	if patch.Avatar != nil {
		profile.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}
	if patch.ResumeURL != nil {
		profile.ResumeURL = *patch.ResumeURL
	}

	return s.repo.Update(ctx, profile)
}

// UploadResume stores the resume PDF under a generated key, writes its
// public URL onto the profile, and returns the URL.
func (s *ProfileService) UploadResume(ctx context.Context, r io.Reader, size int64) (string, error) {
	if s.blobs == nil {
		return "", errors.New("blob storage is not configured")
	}

	key := fmt.Sprintf("resume/%s.pdf", uuid.NewString())
	if err := s.blobs.Put(ctx, key, r, size, "application/pdf"); err != nil {
		return "", err
	}

	resumeURL := s.blobs.PublicURL(key)
	if _, err := s.Update(ctx, types.ProfileUpdate{ResumeURL: &resumeURL}); err != nil {
		return "", err
	}
	return resumeURL, nil
}

func defaultProfile() types.Profile {
	return types.Profile{
		Name:  defaultProfileName,
		Title: defaultProfileTitle,
		Bio:   defaultProfileBio,
	}
}
