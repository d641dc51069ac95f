package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/document"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

const missingEmployeeName = "Pegawai tidak ditemukan"

// GeneratedDoc is a rendered document ready to send: either a docx body or
// a print HTML page, with the filename the client should save it under.
type GeneratedDoc struct {
	Filename string
	Docx     *document.Doc
	HTML     string
}

// DocumentService resolves an assignment letter, SPPD or receipt into the
// fully joined data a rendered document needs and gates printing by role.
type DocumentService struct {
	assignmentRepo *repository.AssignmentRepository
	sppdRepo       *repository.SPPDRepository
	receiptRepo    *repository.ReceiptRepository
	employeeRepo   *repository.EmployeeRepository
	signatoryRepo  *repository.SignatoryRepository
	cityRepo       *repository.CityRepository
	transportRepo  *repository.TransportModeRepository
	fundingRepo    *repository.FundingSourceRepository
	settingsRepo   *repository.SettingsRepository

	httpClient       *http.Client
	issuedAtCity     string
	letterheadWindow time.Duration
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(
	assignmentRepo *repository.AssignmentRepository,
	sppdRepo *repository.SPPDRepository,
	receiptRepo *repository.ReceiptRepository,
	employeeRepo *repository.EmployeeRepository,
	signatoryRepo *repository.SignatoryRepository,
	cityRepo *repository.CityRepository,
	transportRepo *repository.TransportModeRepository,
	fundingRepo *repository.FundingSourceRepository,
	settingsRepo *repository.SettingsRepository,
	issuedAtCity string,
	letterheadWindow time.Duration,
) *DocumentService {
	return &DocumentService{
		assignmentRepo:   assignmentRepo,
		sppdRepo:         sppdRepo,
		receiptRepo:      receiptRepo,
		employeeRepo:     employeeRepo,
		signatoryRepo:    signatoryRepo,
		cityRepo:         cityRepo,
		transportRepo:    transportRepo,
		fundingRepo:      fundingRepo,
		settingsRepo:     settingsRepo,
		httpClient:       &http.Client{},
		issuedAtCity:     issuedAtCity,
		letterheadWindow: letterheadWindow,
	}
}

// LetterDoc renders an assignment letter. asDocx selects the binary export
// over the print HTML page.
func (s *DocumentService) LetterDoc(ctx context.Context, role models.Role, id string, asDocx bool) (*GeneratedDoc, error) {
	letter, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanPrint(role, letter.Status) {
		return nil, utils.ErrForbidden
	}

	data := document.LetterData{
		Letter:      letter,
		Employees:   s.resolveEmployees(ctx, letter.EmployeeIDs),
		Destination: s.resolveCityName(ctx, letter.DestinationID),
		Signer:      s.resolveSigner(ctx, letter.SignatoryID),
		Layout:      document.LayoutFromLetter(letter),
		Letterhead:  s.resolveLetterhead(ctx),
		IssuedAt:    s.issuedAtCity,
	}

	out := &GeneratedDoc{Filename: document.LetterFilename(letter.Number)}
	if asDocx {
		out.Docx = document.BuildLetterDocx(data)
		return out, nil
	}
	out.HTML, err = document.RenderLetterHTML(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SPPDDoc renders a travel order. Print permission follows the parent
// letter's workflow status.
func (s *DocumentService) SPPDDoc(ctx context.Context, role models.Role, id string, asDocx bool) (*GeneratedDoc, error) {
	sppd, err := s.sppdRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	letter, err := s.assignmentRepo.GetByID(ctx, sppd.AssignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	if !CanPrint(role, letter.Status) {
		return nil, utils.ErrForbidden
	}

	data := document.SPPDData{
		SPPD:        sppd,
		Letter:      letter,
		Employees:   s.resolveEmployees(ctx, letter.EmployeeIDs),
		Destination: s.resolveCityName(ctx, letter.DestinationID),
		Transport:   s.resolveTransportName(ctx, sppd.TransportID),
		Funding:     s.resolveFunding(ctx, sppd.FundingID),
		Signer:      s.resolveSigner(ctx, letter.SignatoryID),
		Layout:      document.LayoutFromLetter(letter),
		Letterhead:  s.resolveLetterhead(ctx),
		IssuedAt:    s.issuedAtCity,
		OriginCity:  s.issuedAtCity,
	}

	out := &GeneratedDoc{Filename: document.SPPDFilename(letter.Number)}
	if asDocx {
		out.Docx = document.BuildSPPDDocx(data)
		return out, nil
	}
	out.HTML, err = document.RenderSPPDHTML(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReceiptDoc renders a kwitansi. The funding chain runs receipt to SPPD to
// letter; a broken chain is a not-found, not a crash.
func (s *DocumentService) ReceiptDoc(ctx context.Context, role models.Role, id string, asDocx bool) (*GeneratedDoc, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sppd, err := s.sppdRepo.GetByID(ctx, receipt.SPPDID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	letter, err := s.assignmentRepo.GetByID(ctx, sppd.AssignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	if !CanPrint(role, letter.Status) {
		return nil, utils.ErrForbidden
	}

	data := document.ReceiptData{
		Receipt:     receipt,
		Letter:      letter,
		Employees:   s.resolveEmployees(ctx, letter.EmployeeIDs),
		Destination: s.resolveCityName(ctx, letter.DestinationID),
		Treasurer:   s.resolveOfficial(ctx, receipt.TreasurerID, "Bendahara Pengeluaran"),
		PPTK:        s.resolveOfficial(ctx, receipt.PPTKID, "PPTK"),
		KPA:         s.resolveOfficial(ctx, receipt.KPAID, "Kuasa Pengguna Anggaran"),
		Letterhead:  s.resolveLetterhead(ctx),
		IssuedAt:    s.issuedAtCity,
	}

	out := &GeneratedDoc{Filename: document.ReceiptFilename(letter.Number)}
	if asDocx {
		out.Docx = document.BuildReceiptDocx(data)
		return out, nil
	}
	out.HTML, err = document.RenderReceiptHTML(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resolveEmployees keeps the assignment order and substitutes a placeholder
// for every id that no longer resolves, so a deleted employee never blocks
// document generation.
func (s *DocumentService) resolveEmployees(ctx context.Context, ids []string) []models.Employee {
	found, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		log.Warn().Err(err).Msg("Employee lookup failed during document generation")
	}
	byID := make(map[string]models.Employee, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}
	out := make([]models.Employee, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
			continue
		}
		out = append(out, models.Employee{ID: id, Name: missingEmployeeName, NIP: "-", Position: "-"})
	}
	return out
}

func (s *DocumentService) resolveSigner(ctx context.Context, signatoryID string) document.Signer {
	placeholder := document.Signer{Name: missingEmployeeName, NIP: "-", RoleName: "Kepala"}
	sig, err := s.signatoryRepo.GetByID(ctx, signatoryID)
	if err != nil {
		log.Warn().Err(err).Str("signatory_id", signatoryID).Msg("Signatory lookup failed, using placeholder")
		return placeholder
	}
	emp, err := s.employeeRepo.GetByID(ctx, sig.EmployeeID)
	if err != nil {
		log.Warn().Err(err).Str("employee_id", sig.EmployeeID).Msg("Signatory employee lookup failed, using placeholder")
		placeholder.RoleName = sig.Role
		return placeholder
	}
	return document.Signer{Name: emp.Name, Rank: emp.Rank, NIP: emp.NIP, RoleName: sig.Role}
}

// resolveOfficial resolves a receipt official by employee id. An empty or
// dangling id yields nil and the official's column is omitted.
func (s *DocumentService) resolveOfficial(ctx context.Context, employeeID, roleName string) *document.Signer {
	if employeeID == "" {
		return nil
	}
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		log.Warn().Err(err).Str("employee_id", employeeID).Str("role", roleName).Msg("Receipt official lookup failed, omitting column")
		return nil
	}
	return &document.Signer{Name: emp.Name, Rank: emp.Rank, NIP: emp.NIP, RoleName: roleName}
}

func (s *DocumentService) resolveCityName(ctx context.Context, cityID string) string {
	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		log.Warn().Err(err).Str("city_id", cityID).Msg("Destination lookup failed, using placeholder")
		return "-"
	}
	return city.Name
}

func (s *DocumentService) resolveTransportName(ctx context.Context, transportID string) string {
	if transportID == "" {
		return ""
	}
	mode, err := s.transportRepo.GetByID(ctx, transportID)
	if err != nil {
		log.Warn().Err(err).Str("transport_id", transportID).Msg("Transport mode lookup failed")
		return ""
	}
	return mode.Name
}

func (s *DocumentService) resolveFunding(ctx context.Context, fundingID string) *models.FundingSource {
	if fundingID == "" {
		return nil
	}
	f, err := s.fundingRepo.GetByID(ctx, fundingID)
	if err != nil {
		log.Warn().Err(err).Str("funding_id", fundingID).Msg("Funding source lookup failed")
		return nil
	}
	return f
}

func (s *DocumentService) resolveLetterhead(ctx context.Context) document.Letterhead {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Agency settings lookup failed, using default letterhead")
		settings = nil
	}
	return document.FetchLetterhead(ctx, s.httpClient, settings, s.letterheadWindow)
}
