package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// ImportService parses and stores bulk employee uploads.
type ImportService struct {
	employeeRepo *repository.EmployeeRepository
}

// NewImportService constructs an ImportService.
func NewImportService(employeeRepo *repository.EmployeeRepository) *ImportService {
	return &ImportService{employeeRepo: employeeRepo}
}

// ImportEmployees parses a delimited file and inserts the rows in one batch.
// It returns how many employees were imported.
func (s *ImportService) ImportEmployees(ctx context.Context, role models.Role, r io.Reader) (int, error) {
	if !CanCreate(role) {
		return 0, utils.ErrForbidden
	}
	employees, err := ParseEmployeeFile(r)
	if err != nil {
		return 0, err
	}
	if len(employees) == 0 {
		return 0, fmt.Errorf("%w: no rows found", utils.ErrInvalidImportFile)
	}
	if err := s.employeeRepo.CreateBatch(ctx, employees); err != nil {
		return 0, err
	}
	log.Info().Int("count", len(employees)).Msg("Employees imported")
	return len(employees), nil
}

// ParseEmployeeFile reads a comma- or semicolon-delimited file with columns
// [nip, name, position, rank, grade]. The delimiter is sniffed from the
// first line; a header row is skipped when detected.
func ParseEmployeeFile(r io.Reader) ([]models.Employee, error) {
	br := bufio.NewReader(r)
	firstLine, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidImportFile, err)
	}
	delimiter := sniffDelimiter(string(firstLine))

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var employees []models.Employee
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidImportFile, err)
		}
		if first {
			first = false
			if isHeaderRow(record) {
				continue
			}
		}
		if len(record) < 2 {
			continue
		}
		e := models.Employee{
			ID:   uuid.NewString(),
			NIP:  strings.TrimSpace(record[0]),
			Name: strings.TrimSpace(record[1]),
		}
		if len(record) > 2 {
			e.Position = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			e.Rank = strings.TrimSpace(record[3])
		}
		if len(record) > 4 {
			e.Grade = strings.TrimSpace(record[4])
		}
		if e.Name == "" {
			continue
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// sniffDelimiter picks semicolon when the first line carries more of them
// than commas; otherwise comma wins.
func sniffDelimiter(line string) rune {
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// isHeaderRow recognizes the import template's header line.
func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(record[0]))
	return first == "nip" || first == "nationalid"
}
