package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/cache"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

const collectionReceipts = "receipts"

// ReceiptService owns receipt CRUD and the Draft -> Paid step.
type ReceiptService struct {
	receiptRepo *repository.ReceiptRepository
	collections *cache.CollectionCache
}

// NewReceiptService constructs a ReceiptService.
func NewReceiptService(receiptRepo *repository.ReceiptRepository, collections *cache.CollectionCache) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo, collections: collections}
}

// List returns all receipts, falling back to the cache snapshot when the
// database errors.
func (s *ReceiptService) List(ctx context.Context) ([]models.Receipt, error) {
	receipts, err := s.receiptRepo.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Receipt list query failed, trying cache snapshot")
		var cached []models.Receipt
		ok, cacheErr := s.collections.Get(ctx, collectionReceipts, &cached)
		if cacheErr != nil || !ok {
			return nil, err
		}
		return cached, nil
	}
	s.collections.Put(ctx, collectionReceipts, receipts)
	return receipts, nil
}

// Get returns one receipt by id.
func (s *ReceiptService) Get(ctx context.Context, id string) (*models.Receipt, error) {
	return s.receiptRepo.GetByID(ctx, id)
}

// Create stores a new draft receipt. The total is always recomputed from the
// visible components, never trusted from the caller.
func (s *ReceiptService) Create(ctx context.Context, role models.Role, rec *models.Receipt) error {
	if !CanCreate(role) {
		return utils.ErrForbidden
	}
	rec.ID = uuid.NewString()
	rec.Status = models.ReceiptDraft
	rec.Normalize()
	if err := s.receiptRepo.Create(ctx, rec); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	log.Info().Str("receipt_id", rec.ID).Int64("total", rec.TotalAmount).Msg("Receipt created")
	return nil
}

// Update rewrites a receipt's components and references. Paid receipts are
// immutable.
func (s *ReceiptService) Update(ctx context.Context, role models.Role, rec *models.Receipt) error {
	if !CanCreate(role) {
		return utils.ErrForbidden
	}
	current, err := s.receiptRepo.GetByID(ctx, rec.ID)
	if err != nil {
		return err
	}
	if current.Status == models.ReceiptPaid {
		return utils.ErrReceiptAlreadyPaid
	}
	rec.Status = current.Status
	rec.Normalize()
	if err := s.receiptRepo.Update(ctx, rec); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

// Pay marks a receipt as Paid. Admin only; irreversible.
func (s *ReceiptService) Pay(ctx context.Context, role models.Role, id string) (*models.Receipt, error) {
	if !CanPay(role) {
		return nil, utils.ErrForbidden
	}
	rec, err := s.receiptRepo.MarkPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refreshSnapshot(ctx)
	log.Info().Str("receipt_id", id).Int64("total", rec.TotalAmount).Msg("Receipt paid")
	return rec, nil
}

// Delete removes a receipt. Paid receipts are kept for the books.
func (s *ReceiptService) Delete(ctx context.Context, role models.Role, id string) error {
	if !CanCreate(role) {
		return utils.ErrForbidden
	}
	current, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == models.ReceiptPaid {
		return utils.ErrReceiptAlreadyPaid
	}
	if err := s.receiptRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshSnapshot(ctx)
	return nil
}

func (s *ReceiptService) refreshSnapshot(ctx context.Context) {
	receipts, err := s.receiptRepo.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Skipping receipt snapshot refresh")
		return
	}
	s.collections.Put(ctx, collectionReceipts, receipts)
}
