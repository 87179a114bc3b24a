package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"planilla-api/models"
	"planilla-api/pkg/logger"
	"planilla-api/pkg/params"
	"planilla-api/repository"
)

// Report pagination defaults, matching the historical contract.
const (
	defaultReportStart = 0
	defaultReportLimit = 100
)

type ReportHandler struct {
	reportRepo repository.ReportRepository
}

func NewReportHandler(reportRepo repository.ReportRepository) *ReportHandler {
	return &ReportHandler{
		reportRepo: reportRepo,
	}
}

// reportFilters holds the coerced filter set shared by the report
// endpoints.
type reportFilters struct {
	startDate    *time.Time
	endDate      *time.Time
	cardID       *int
	departmentID *int
}

// parseReportFilters coerces the common report query parameters. The
// date parameter name differs between endpoints (startDate vs date), so
// it is passed in.
func parseReportFilters(c *fiber.Ctx, startParam string) (*reportFilters, string) {
	startDate, err := params.NullableDate(c.Query(startParam))
	if err != nil {
		return nil, startParam + " must be a valid date (YYYY-MM-DD)"
	}
	endDate, err := params.NullableDate(c.Query("endDate"))
	if err != nil {
		return nil, "endDate must be a valid date (YYYY-MM-DD)"
	}
	cardID, err := params.NullableInt(c.Query("IDCard"))
	if err != nil {
		return nil, "IDCard must be a number"
	}
	departmentID, err := params.NullableInt(c.Query("departmentID"))
	if err != nil {
		return nil, "departmentID must be a number"
	}

	return &reportFilters{
		startDate:    startDate,
		endDate:      endDate,
		cardID:       cardID,
		departmentID: departmentID,
	}, ""
}

// GetReportDetail godoc
// @Summary Get the payroll detail report
// @Description Per-fortnight payroll rows, filterable by date range, collaborator and department, paginated
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param IDCard query int false "Collaborator card ID filter"
// @Param departmentID query int false "Department filter"
// @Param startRange query int false "Pagination offset (default 0)"
// @Param limitRange query int false "Pagination limit (default 100)"
// @Success 200 {array} models.Row "Report rows"
// @Failure 400 {object} object{message=string} "Invalid filter"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /report/detail [get]
func (h *ReportHandler) GetReportDetail(c *fiber.Ctx) error {
	filters, msg := parseReportFilters(c, "startDate")
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	start, err := params.IntOrDefault(c.Query("startRange"), defaultReportStart)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "startRange must be a number"})
	}
	limit, err := params.IntOrDefault(c.Query("limitRange"), defaultReportLimit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "limitRange must be a number"})
	}

	_, rows, err := h.reportRepo.GetReportDetail(c.Context(),
		filters.startDate, filters.endDate, filters.cardID, filters.departmentID, start, limit)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting report detail"})
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetReportTotal godoc
// @Summary Get the payroll totals report
// @Description Aggregated payroll rows, filterable by date range, collaborator and department
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param IDCard query int false "Collaborator card ID filter"
// @Param departmentID query int false "Department filter"
// @Success 200 {array} models.Row "Report rows"
// @Failure 400 {object} object{message=string} "Invalid filter"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /report/total [get]
func (h *ReportHandler) GetReportTotal(c *fiber.Ctx) error {
	filters, msg := parseReportFilters(c, "date")
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	rows, err := h.reportRepo.GetReportTotal(c.Context(),
		filters.startDate, filters.endDate, filters.cardID, filters.departmentID)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting report total"})
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

// ExportReportDetail godoc
// @Summary Export the payroll detail report as XLSX
// @Description Same filters as the detail report; responds with a spreadsheet download
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param IDCard query int false "Collaborator card ID filter"
// @Param departmentID query int false "Department filter"
// @Success 200 {file} file "XLSX download"
// @Failure 400 {object} object{message=string} "Invalid filter"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /report/export [get]
func (h *ReportHandler) ExportReportDetail(c *fiber.Ctx) error {
	filters, msg := parseReportFilters(c, "startDate")
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	start, err := params.IntOrDefault(c.Query("startRange"), defaultReportStart)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "startRange must be a number"})
	}
	limit, err := params.IntOrDefault(c.Query("limitRange"), defaultReportLimit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "limitRange must be a number"})
	}

	columns, rows, err := h.reportRepo.GetReportDetail(c.Context(),
		filters.startDate, filters.endDate, filters.cardID, filters.departmentID, start, limit)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error getting report detail"})
	}

	buf, err := buildReportWorkbook(columns, rows)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error building report file"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="payroll_detail.xlsx"`)
	return c.Status(fiber.StatusOK).Send(buf)
}

// buildReportWorkbook lays out the routine's rows as a worksheet, one
// column per routine column in the routine's own order.
func buildReportWorkbook(columns []string, rows []models.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, row[col]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
