package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/models"
	"gorm.io/gorm"
)

// ErrResearchNotFound is returned both when a record does not exist and
// when it belongs to a different owner. The two cases must stay
// indistinguishable.
var ErrResearchNotFound = errors.New("research not found")

type ResearchService struct {
	db *gorm.DB
}

func NewResearchService(db *gorm.DB) *ResearchService {
	return &ResearchService{db: db}
}

// ownedBy scopes every query to rows owned by the given user.
func ownedBy(ownerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

func (s *ResearchService) Create(ctx context.Context, owner *models.User, req dto.ResearchCreateRequest) (*models.Research, error) {
	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	research := models.Research{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		OwnerID:     owner.ID,
	}

	if err := s.db.WithContext(ctx).Create(&research).Error; err != nil {
		return nil, fmt.Errorf("failed to create research: %w", err)
	}

	return &research, nil
}

// List returns the owner's researches, newest first.
func (s *ResearchService) List(ctx context.Context, owner *models.User, skip, limit int) ([]models.Research, error) {
	researches := []models.Research{}
	err := s.db.WithContext(ctx).Scopes(ownedBy(owner.ID)).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&researches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list researches: %w", err)
	}
	return researches, nil
}

func (s *ResearchService) Get(ctx context.Context, owner *models.User, id uint) (*models.Research, error) {
	var research models.Research
	err := s.db.WithContext(ctx).Scopes(ownedBy(owner.ID)).First(&research, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResearchNotFound
		}
		return nil, fmt.Errorf("failed to fetch research: %w", err)
	}
	return &research, nil
}

// Update applies the non-nil fields of the patch and refreshes updated_at,
// even when the patch is empty.
func (s *ResearchService) Update(ctx context.Context, owner *models.User, id uint, req dto.ResearchUpdateRequest) (*models.Research, error) {
	research, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		research.Title = *req.Title
	}
	if req.Description != nil {
		research.Description = *req.Description
	}
	if req.Status != nil {
		research.Status = *req.Status
	}

	if err := s.db.WithContext(ctx).Save(research).Error; err != nil {
		return nil, fmt.Errorf("failed to update research: %w", err)
	}

	return research, nil
}

// Delete removes the record permanently.
func (s *ResearchService) Delete(ctx context.Context, owner *models.User, id uint) error {
	research, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(research).Error; err != nil {
		return fmt.Errorf("failed to delete research: %w", err)
	}
	return nil
}
