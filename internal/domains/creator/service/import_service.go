package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"creator-portal-backend/internal/domains/creator/model"

	"github.com/rs/zerolog/log"
)

// maxImportSize - upload gate, check trước khi đọc bất kỳ row nào
const maxImportSize = 5 * 1024 * 1024 // 5 MiB

// Import chạy bulk import pipeline:
// gate -> parse -> normalize từng row -> validate -> persist tuần tự.
// Row hỏng bị skip kèm reason, các row còn lại vẫn được xử lý;
// chỉ gate failure và CSV parse error mới abort toàn bộ.
func (s *creatorService) Import(ctx context.Context, filename, contentType string, size int64, file io.Reader) (*model.ImportSummary, error) {
	if err := validateImportFile(filename, contentType, size); err != nil {
		return nil, err
	}

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, model.ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records, err := reader.ReadAll()
	if err != nil {
		// Malformed CSV (unbalanced quotes, ragged rows) abort toàn bộ:
		// row numbering sau điểm hỏng không còn tin được
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, model.ErrEmptyFile
	}

	var created []model.Creator
	var importErrors []string

	for i, record := range records {
		rowNum := i + 1 // 1-based, không tính header

		rowMap := make(map[string]string, len(header))
		for col, h := range header {
			if col < len(record) {
				rowMap[h] = record[col]
			}
		}

		row := model.NormalizeRow(rowNum, rowMap)

		if err := row.Validate(); err != nil {
			importErrors = append(importErrors, err.Error())
			continue
		}

		// Cùng một create path với admin form: platform enum,
		// URL shape, non-negative counts đều bị reject ở đây
		creator, err := s.Create(ctx, row.ToCreateRequest())
		if err != nil {
			importErrors = append(importErrors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}

		created = append(created, *creator)
	}

	if created == nil {
		created = []model.Creator{}
	}
	if importErrors == nil {
		importErrors = []string{}
	}

	log.Info().
		Int("created", len(created)).
		Int("errors", len(importErrors)).
		Str("filename", filename).
		Msg("📥 CSV import completed")

	return &model.ImportSummary{
		Message:    fmt.Sprintf("Import completed: %d created, %d errors", len(created), len(importErrors)),
		Success:    true,
		Created:    len(created),
		ErrorCount: len(importErrors),
		Data: model.ImportData{
			CreatedCreators: created,
			Errors:          importErrors,
		},
	}, nil
}

// Template returns CSV mẫu cho users download và điền vào
func (s *creatorService) Template() string {
	return model.GenerateTemplate()
}

// validateImportFile - gate: type check trước, size check sau
func validateImportFile(filename, contentType string, size int64) error {
	isCSV := strings.EqualFold(filepath.Ext(filename), ".csv") ||
		strings.Contains(strings.ToLower(contentType), "csv")
	if !isCSV {
		return model.ErrInvalidFileType
	}

	if size > maxImportSize {
		return model.ErrFileTooLarge
	}

	return nil
}
