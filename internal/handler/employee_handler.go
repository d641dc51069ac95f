package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siperdin/siperdin_api/internal/document"
	"github.com/siperdin/siperdin_api/internal/middleware"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/utils"
)

// EmployeeHandler handles employee master-data and the CSV import flow.
type EmployeeHandler struct {
	repo          *repository.EmployeeRepository
	importService *service.ImportService
}

func NewEmployeeHandler(repo *repository.EmployeeRepository, importService *service.ImportService) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, importService: importService}
}

// List returns employees. Without query parameters the full list comes
// back; imported rosters run to hundreds of rows, so ?page=&limit= serves
// a window with pagination metadata.
// GET /v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to retrieve employees")
		return
	}

	page, pageErr := strconv.Atoi(c.Query("page"))
	limit, limitErr := strconv.Atoi(c.Query("limit"))
	if pageErr != nil && limitErr != nil {
		utils.Success(c, 200, "Successfully retrieved employees", employees)
		return
	}
	page, limit, start, end := pageWindow(len(employees), page, limit)
	utils.SuccessWithPagination(c, 200, "Successfully retrieved employees",
		employees[start:end], page, limit, len(employees))
}

// pageWindow clamps a 1-based page request onto a slice of total items.
// Pages past the end come back empty rather than erroring.
func pageWindow(total, page, limit int) (int, int, int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return page, limit, start, end
}

// Get returns one employee.
// GET /v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve employee")
		return
	}
	utils.Success(c, 200, "Successfully retrieved employee", employee)
}

type employeeRequest struct {
	NIP      string `json:"nip" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
	Rank     string `json:"rank"`
	Grade    string `json:"grade"`
}

// Create stores a new employee.
// POST /v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	employee := &models.Employee{
		ID:       uuid.NewString(),
		NIP:      req.NIP,
		Name:     req.Name,
		Position: req.Position,
		Rank:     req.Rank,
		Grade:    req.Grade,
	}
	if err := h.repo.Create(c.Request.Context(), employee); err != nil {
		writeError(c, err, "Failed to create employee")
		return
	}
	utils.Success(c, 201, "Employee created", employee)
}

// Update rewrites an employee.
// PUT /v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	employee := &models.Employee{
		ID:       c.Param("id"),
		NIP:      req.NIP,
		Name:     req.Name,
		Position: req.Position,
		Rank:     req.Rank,
		Grade:    req.Grade,
	}
	if err := h.repo.Update(c.Request.Context(), employee); err != nil {
		writeError(c, err, "Failed to update employee")
		return
	}
	utils.Success(c, 200, "Employee updated", employee)
}

// Delete removes an employee. Letters that referenced it keep the dangling
// id and render a placeholder.
// DELETE /v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete employee")
		return
	}
	utils.Success(c, 200, "Employee deleted", nil)
}

// Import ingests a CSV file of employees.
// POST /v1/employees/import
func (h *EmployeeHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing file upload field")
		return
	}
	defer file.Close()

	count, err := h.importService.ImportEmployees(c.Request.Context(), middleware.SessionRole(c), file)
	if err != nil {
		writeError(c, err, "Failed to import employees")
		return
	}
	utils.Success(c, 200, "Employees imported", gin.H{"imported": count})
}

// Template serves the spreadsheet import template.
// GET /v1/employees/import/template
func (h *EmployeeHandler) Template(c *gin.Context) {
	body, err := document.EmployeeImportTemplate()
	if err != nil {
		writeError(c, err, "Failed to render template")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="Template_Import_Pegawai.xls"`)
	c.Data(http.StatusOK, document.SpreadsheetContentType, []byte(body))
}
