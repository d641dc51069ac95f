package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/cache"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

const collectionSPPDs = "sppds"

// SPPDService owns travel-order CRUD and the approved-letter gate.
type SPPDService struct {
	sppdRepo       *repository.SPPDRepository
	assignmentRepo *repository.AssignmentRepository
	collections    *cache.CollectionCache
}

// NewSPPDService constructs an SPPDService.
func NewSPPDService(
	sppdRepo *repository.SPPDRepository,
	assignmentRepo *repository.AssignmentRepository,
	collections *cache.CollectionCache,
) *SPPDService {
	return &SPPDService{sppdRepo: sppdRepo, assignmentRepo: assignmentRepo, collections: collections}
}

// List returns all travel orders, falling back to the cache snapshot when
// the database errors.
func (s *SPPDService) List(ctx context.Context) ([]models.SPPD, error) {
	sppds, err := s.sppdRepo.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("SPPD list query failed, trying cache snapshot")
		var cached []models.SPPD
		ok, cacheErr := s.collections.Get(ctx, collectionSPPDs, &cached)
		if cacheErr != nil || !ok {
			return nil, err
		}
		return cached, nil
	}
	s.collections.Put(ctx, collectionSPPDs, sppds)
	return sppds, nil
}

// Get returns one travel order by id.
func (s *SPPDService) Get(ctx context.Context, id string) (*models.SPPD, error) {
	return s.sppdRepo.GetByID(ctx, id)
}

// Ready lists approved assignment letters that have no SPPD yet.
func (s *SPPDService) Ready(ctx context.Context) ([]models.AssignmentLetter, error) {
	return s.sppdRepo.GetReadyAssignments(ctx)
}

// CreateInput carries the fields a caller supplies when issuing an SPPD.
type CreateSPPDInput struct {
	AssignmentID string    `json:"assignmentId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	TransportID  string    `json:"transportId"`
	FundingID    string    `json:"fundingId"`
}

// Create issues a travel order from an approved assignment letter. Letters
// that are not Approved fail with ASSIGNMENT_NOT_APPROVED; a letter that
// already has an SPPD fails with SPPD_EXISTS.
func (s *SPPDService) Create(ctx context.Context, role models.Role, input *CreateSPPDInput) (*models.SPPD, error) {
	if !CanCreate(role) {
		return nil, utils.ErrForbidden
	}
	letter, err := s.assignmentRepo.GetByID(ctx, input.AssignmentID)
	if err != nil {
		return nil, err
	}
	if letter.Status != models.LetterApproved {
		return nil, utils.ErrAssignmentNotApproved
	}
	if _, err := s.sppdRepo.GetByAssignmentID(ctx, letter.ID); err == nil {
		return nil, utils.ErrSPPDExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	sppd := &models.SPPD{
		ID:           uuid.NewString(),
		AssignmentID: letter.ID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Status:       models.SPPDOngoing,
		TransportID:  input.TransportID,
		FundingID:    input.FundingID,
	}
	if sppd.StartDate.IsZero() {
		sppd.StartDate = letter.StartDate
	}
	if sppd.EndDate.IsZero() {
		sppd.EndDate = letter.EndDate
	}
	if err := s.sppdRepo.Create(ctx, sppd); err != nil {
		return nil, err
	}
	s.refreshSnapshot(ctx)
	log.Info().Str("sppd_id", sppd.ID).Str("assignment_id", letter.ID).Msg("SPPD issued")
	return sppd, nil
}

// Update rewrites dates, status and references of a travel order.
func (s *SPPDService) Update(ctx context.Context, role models.Role, sppd *models.SPPD) error {
	if !CanCreate(role) {
		return utils.ErrForbidden
	}
	switch sppd.Status {
	case models.SPPDOngoing, models.SPPDDone:
	default:
		return fmt.Errorf("%w: unknown SPPD status %q", utils.ErrValidation, sppd.Status)
	}
	if err := s.sppdRepo.Update(ctx, sppd); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

// Delete removes a travel order.
func (s *SPPDService) Delete(ctx context.Context, role models.Role, id string) error {
	if !CanCreate(role) {
		return utils.ErrForbidden
	}
	if err := s.sppdRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

func (s *SPPDService) refreshSnapshot(ctx context.Context) {
	sppds, err := s.sppdRepo.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Skipping SPPD snapshot refresh")
		return
	}
	s.collections.Put(ctx, collectionSPPDs, sppds)
}
