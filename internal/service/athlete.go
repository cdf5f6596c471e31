package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
	"workoutapi/internal/storage"
)

var (
	ErrIDRequired             = errors.New("id is required")
	ErrValidation             = errors.New("validation failed")
	ErrAthleteNotFound        = errors.New("athlete not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrTrainingCenterNotFound = errors.New("training center not found")
	ErrCPFTaken               = errors.New("an athlete with this cpf already exists")
	ErrPhotoNotFound          = errors.New("athlete has no photo")
	ErrReaderNil              = errors.New("reader is nil")
)

// photoURLExpiry bounds how long a presigned photo download link stays valid.
const photoURLExpiry = 15 * time.Minute

// NameRef references a category or training center by its unique name.
type NameRef struct {
	Name string `json:"name"`
}

// AthleteInput is the payload for registering a new athlete.
type AthleteInput struct {
	Name           string  `json:"name"`
	CPF            string  `json:"cpf"`
	Age            int     `json:"age"`
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	Sex            string  `json:"sex"`
	Category       NameRef `json:"category"`
	TrainingCenter NameRef `json:"training_center"`
}

func (in AthleteInput) validate() error {
	switch {
	case in.Name == "" || len(in.Name) > 50:
		return fmt.Errorf("%w: name is required and must be at most 50 characters", ErrValidation)
	case len(in.CPF) != 11:
		return fmt.Errorf("%w: cpf must be exactly 11 digits", ErrValidation)
	case in.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrValidation)
	case in.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	case in.Height <= 0:
		return fmt.Errorf("%w: height must be positive", ErrValidation)
	case len(in.Sex) != 1:
		return fmt.Errorf("%w: sex must be a single character", ErrValidation)
	case in.Category.Name == "":
		return fmt.Errorf("%w: category name is required", ErrValidation)
	case in.TrainingCenter.Name == "":
		return fmt.Errorf("%w: training center name is required", ErrValidation)
	}
	return nil
}

// AthleteUpdate is the partial-update payload; only name and age can change.
// Nil fields are left untouched.
type AthleteUpdate struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// AthleteListResult is the service-level DTO for paginated athlete summaries.
type AthleteListResult struct {
	Items []model.AthleteSummary `json:"data"`
	Total int                    `json:"total"`
}

// AthleteService defines the use cases for managing athletes.
type AthleteService interface {
	// Create registers a new athlete after resolving its category and
	// training center by name.
	Create(ctx context.Context, in AthleteInput) (*model.Athlete, error)

	// List returns athlete summaries using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*AthleteListResult, error)

	// Get returns a single athlete by its ID.
	Get(ctx context.Context, id string) (*model.Athlete, error)

	// GetByCPF returns a single athlete by its CPF.
	GetByCPF(ctx context.Context, cpf string) (*model.Athlete, error)

	// GetByName returns a single athlete by its exact name.
	GetByName(ctx context.Context, name string) (*model.Athlete, error)

	// Update applies a partial update (name and/or age) and returns the
	// updated athlete.
	Update(ctx context.Context, id string, upd AthleteUpdate) (*model.Athlete, error)

	// Delete removes an athlete and its stored photo, if any.
	Delete(ctx context.Context, id string) error

	// AttachPhoto uploads a photo to object storage, records its key on the
	// athlete, and rolls back the upload if the DB update fails.
	// originalFilename is used only to extract the extension.
	AttachPhoto(ctx context.Context, id string, r io.Reader, originalFilename string, contentType string, size int64) (*model.Athlete, error)

	// PhotoURL returns a presigned download URL for the athlete's photo.
	PhotoURL(ctx context.Context, id string) (string, error)
}

// athleteService is a concrete implementation of AthleteService.
type athleteService struct {
	store    storage.Storage
	athletes repository.AthleteRepository
	cats     repository.CategoryRepository
	centers  repository.TrainingCenterRepository
}

// NewAthleteService constructs a new AthleteService.
func NewAthleteService(
	store storage.Storage,
	athletes repository.AthleteRepository,
	cats repository.CategoryRepository,
	centers repository.TrainingCenterRepository,
) AthleteService {
	return &athleteService{store: store, athletes: athletes, cats: cats, centers: centers}
}

func (s *athleteService) Create(ctx context.Context, in AthleteInput) (*model.Athlete, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	cat, err := s.cats.FindByName(ctx, in.Category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	center, err := s.centers.FindByName(ctx, in.TrainingCenter.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainingCenterNotFound
		}
		return nil, err
	}

	athlete := &model.Athlete{
		ID:             uuid.New().String(),
		Name:           in.Name,
		CPF:            in.CPF,
		Age:            in.Age,
		Weight:         in.Weight,
		Height:         in.Height,
		Sex:            in.Sex,
		Category:       cat.Name,
		TrainingCenter: center.Name,
		CreatedAt:      time.Now().UTC(),
	}
	stored, err := s.athletes.Create(ctx, athlete, cat.ID, center.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrCPFTaken
		}
		return nil, err
	}
	return stored, nil
}

// List returns paginated athlete summaries without exposing repository types.
func (s *athleteService) List(ctx context.Context, limit, offset int) (*AthleteListResult, error) {
	// Page size defaults to 3, matching the public API contract.
	if limit <= 0 {
		limit = 3
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.athletes.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &AthleteListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *athleteService) Get(ctx context.Context, id string) (*model.Athlete, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return s.mapNotFound(s.athletes.FindByID(ctx, id))
}

func (s *athleteService) GetByCPF(ctx context.Context, cpf string) (*model.Athlete, error) {
	if cpf == "" {
		return nil, fmt.Errorf("%w: cpf is required", ErrValidation)
	}
	return s.mapNotFound(s.athletes.FindByCPF(ctx, cpf))
}

func (s *athleteService) GetByName(ctx context.Context, name string) (*model.Athlete, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.mapNotFound(s.athletes.FindByName(ctx, name))
}

func (s *athleteService) mapNotFound(a *model.Athlete, err error) (*model.Athlete, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *athleteService) Update(ctx context.Context, id string, upd AthleteUpdate) (*model.Athlete, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if upd.Name != nil && (len(*upd.Name) == 0 || len(*upd.Name) > 50) {
		return nil, fmt.Errorf("%w: name must be between 1 and 50 characters", ErrValidation)
	}
	if upd.Age != nil && *upd.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrValidation)
	}

	if err := s.athletes.Update(ctx, id, upd.Name, upd.Age); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	return s.mapNotFound(s.athletes.FindByID(ctx, id))
}

// Delete removes the athlete's photo from storage first, then the record.
func (s *athleteService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	athlete, err := s.mapNotFound(s.athletes.FindByID(ctx, id))
	if err != nil {
		return err
	}
	// Remove the photo first; if this fails, keep the row so the object key
	// is not lost.
	if athlete.PhotoKey != "" {
		if err := s.store.Delete(ctx, athlete.PhotoKey); err != nil {
			return fmt.Errorf("delete photo: %w", err)
		}
	}
	return s.athletes.Delete(ctx, id)
}

func (s *athleteService) AttachPhoto(ctx context.Context, id string, r io.Reader, originalFilename string, contentType string, size int64) (*model.Athlete, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	athlete, err := s.mapNotFound(s.athletes.FindByID(ctx, id))
	if err != nil {
		return nil, err
	}

	// Generate object key using UUID + extension
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("athletes", uuid.New().String()+ext))

	_, err = s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"athlete-id":        id,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.athletes.SetPhotoKey(ctx, id, key); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	// Best-effort cleanup of the replaced photo.
	if athlete.PhotoKey != "" && athlete.PhotoKey != key {
		_ = s.store.Delete(ctx, athlete.PhotoKey)
	}

	athlete.PhotoKey = key
	return athlete, nil
}

func (s *athleteService) PhotoURL(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	athlete, err := s.mapNotFound(s.athletes.FindByID(ctx, id))
	if err != nil {
		return "", err
	}
	if athlete.PhotoKey == "" {
		return "", ErrPhotoNotFound
	}
	u, err := s.store.PresignGet(ctx, athlete.PhotoKey, photoURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return u, nil
}
