package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"creator-portal-backend/internal/domains/creator/model"

	"github.com/xuri/excelize/v2"
)

// exportBatchSize - page size khi kéo toàn bộ directory ra export
const exportBatchSize = 500

// ExportCSV xuất toàn bộ directory với header y hệt import template,
// nên file export có thể re-import nguyên trạng
func (s *creatorService) ExportCSV(ctx context.Context) ([]byte, error) {
	creators, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(model.TemplateHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range creators {
		if err := w.Write(exportRow(c)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportXLSX xuất directory dưới dạng Excel cho admin reporting
func (s *creatorService) ExportXLSX(ctx context.Context) ([]byte, error) {
	creators, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Creators"
	f.SetSheetName("Sheet1", sheet)

	for col, name := range model.TemplateHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	// Header in đậm
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(model.TemplateHeader), 1)
		f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for i, c := range creators {
		for col, value := range exportRow(c) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel file: %w", err)
	}

	return buf.Bytes(), nil
}

// fetchAll kéo toàn bộ creators theo batch, ordered theo created_at
func (s *creatorService) fetchAll(ctx context.Context) ([]model.Creator, error) {
	var all []model.Creator

	req := model.ListCreatorsRequest{
		SortBy:    model.SortByCreatedAt,
		SortOrder: "asc",
		Page:      1,
		Limit:     exportBatchSize,
	}

	for {
		batch, total, err := s.repo.List(ctx, req)
		if err != nil {
			return nil, err
		}

		all = append(all, batch...)
		if len(all) >= total || len(batch) == 0 {
			break
		}
		req.Page++
	}

	return all, nil
}

// exportRow serialize một creator theo thứ tự TemplateHeader
func exportRow(c model.Creator) []string {
	avgViews := ""
	if c.Details.Analytics.AverageViews != nil {
		avgViews = strconv.FormatInt(*c.Details.Analytics.AverageViews, 10)
	}

	return []string{
		c.Name,
		c.Genre,
		c.Avatar,
		c.Platform,
		c.SocialLink,
		c.LocationName,
		c.PhoneNumber,
		c.MediaKit,
		c.Details.Bio,
		strconv.FormatInt(c.Details.Analytics.Followers, 10),
		strconv.FormatInt(c.Details.Analytics.TotalViews, 10),
		avgViews,
	}
}
