package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/cache"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

const collectionAssignmentLetters = "assignmentLetters"

// AssignmentService owns assignment-letter CRUD and the approval workflow.
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	collections    *cache.CollectionCache
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, collections *cache.CollectionCache) *AssignmentService {
	return &AssignmentService{assignmentRepo: assignmentRepo, collections: collections}
}

// List returns letters, optionally filtered by status. When the database is
// unreachable the cached snapshot is served instead.
func (s *AssignmentService) List(ctx context.Context, status string) ([]models.AssignmentLetter, error) {
	if status != "" && !models.ValidLetterStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", utils.ErrValidation, status)
	}
	letters, err := s.assignmentRepo.GetAll(ctx, status)
	if err != nil {
		log.Warn().Err(err).Msg("Assignment list query failed, trying cache snapshot")
		var cached []models.AssignmentLetter
		ok, cacheErr := s.collections.Get(ctx, collectionAssignmentLetters, &cached)
		if cacheErr != nil || !ok {
			return nil, err
		}
		if status == "" {
			return cached, nil
		}
		filtered := cached[:0:0]
		for _, l := range cached {
			if string(l.Status) == status {
				filtered = append(filtered, l)
			}
		}
		return filtered, nil
	}
	s.collections.Put(ctx, collectionAssignmentLetters, letters)
	return letters, nil
}

// Get returns one letter by id.
func (s *AssignmentService) Get(ctx context.Context, id string) (*models.AssignmentLetter, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// Create validates and stores a new letter for an Admin or Operator.
func (s *AssignmentService) Create(ctx context.Context, role models.Role, letter *models.AssignmentLetter) error {
	if !CanCreate(role) {
		return utils.ErrForbidden
	}
	if len(letter.EmployeeIDs) == 0 {
		return utils.ErrNoEmployees
	}
	letter.ID = uuid.NewString()
	letter.Status = models.LetterPending
	letter.Normalize()
	if err := s.assignmentRepo.Create(ctx, letter); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	log.Info().Str("letter_id", letter.ID).Str("number", letter.Number).Msg("Assignment letter created")
	return nil
}

// Update rewrites a letter's editable fields. Operators may only touch
// Pending or Rejected letters; the workflow status itself is immutable here.
func (s *AssignmentService) Update(ctx context.Context, role models.Role, letter *models.AssignmentLetter) error {
	current, err := s.assignmentRepo.GetByID(ctx, letter.ID)
	if err != nil {
		return err
	}
	if !CanEdit(role, current.Status) {
		return utils.ErrForbidden
	}
	if len(letter.EmployeeIDs) == 0 {
		return utils.ErrNoEmployees
	}
	letter.Status = current.Status
	letter.Normalize()
	if err := s.assignmentRepo.Update(ctx, letter); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

// Delete removes a letter, subject to the same gating as edits.
func (s *AssignmentService) Delete(ctx context.Context, role models.Role, id string) error {
	current, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanEdit(role, current.Status) {
		return utils.ErrForbidden
	}
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	log.Info().Str("letter_id", id).Msg("Assignment letter deleted")
	return nil
}

// ChangeStatus applies a workflow transition. Targets not reachable from the
// current status fail with INVALID_TRANSITION even for Admins; reachable
// targets are still subject to the role permission table.
func (s *AssignmentService) ChangeStatus(ctx context.Context, role models.Role, id, target string) (*models.AssignmentLetter, error) {
	if !models.ValidLetterStatus(target) {
		return nil, fmt.Errorf("%w: unknown status %q", utils.ErrValidation, target)
	}
	current, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	targetStatus := models.LetterStatus(target)
	if !CanTransition(current.Status, targetStatus) {
		return nil, utils.ErrInvalidTransition
	}
	if !CanChangeStatus(role, current.Status, targetStatus) {
		return nil, utils.ErrForbidden
	}
	updated, err := s.assignmentRepo.UpdateStatus(ctx, id, targetStatus)
	if err != nil {
		return nil, err
	}
	s.refreshSnapshot(ctx)
	log.Info().
		Str("letter_id", id).
		Str("from", string(current.Status)).
		Str("to", target).
		Str("role", string(role)).
		Msg("Assignment letter status changed")
	return updated, nil
}

// refreshSnapshot re-mirrors the full collection into the cache after a write.
func (s *AssignmentService) refreshSnapshot(ctx context.Context) {
	letters, err := s.assignmentRepo.GetAll(ctx, "")
	if err != nil {
		log.Warn().Err(err).Msg("Skipping assignment snapshot refresh")
		return
	}
	s.collections.Put(ctx, collectionAssignmentLetters, letters)
}
