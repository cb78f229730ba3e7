// Package handler: export.go implements GET /admin/export.
// Returns every prompt as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "title", "prompt_type", "category", "author",
	"is_published", "is_featured", "view_count", "copy_count", "versions",
	"created_at", "updated_at", "tags",
}

// GetAdminExport implements GET /admin/export.
// Use ?format=csv to receive CSV; default is JSON. Either way the response
// carries a Content-Disposition naming a dated attachment.
func (s *Server) GetAdminExport(ctx context.Context, req gen.GetAdminExportRequestObject) (gen.GetAdminExportResponseObject, error) {
	rows, err := s.export.Export(ctx, actor(ctx))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.GetAdminExport401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.GetAdminExport403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	wantCSV := req.Params.Format != nil && *req.Params.Format == gen.Csv
	if wantCSV {
		return buildCSVResponse(rows, s.exportFilename("csv")), nil
	}
	return buildJSONResponse(rows, s.exportFilename("json")), nil
}

func (s *Server) exportFilename(ext string) string {
	return fmt.Sprintf(`attachment; filename="prompts-%s.%s"`, s.now().UTC().Format("2006-01-02"), ext)
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow, disposition string) gen.GetAdminExport200JSONResponse {
	out := make([]gen.ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return gen.GetAdminExport200JSONResponse{
		Body:    out,
		Headers: gen.GetAdminExport200ResponseHeaders{ContentDisposition: disposition},
	}
}

// buildCSVResponse encodes domain rows as CSV and wraps in the streaming response type.
// Tags within a row are pipe-separated ("|") to keep each prompt on a single CSV line.
func buildCSVResponse(rows []domain.ExportRow, disposition string) gen.GetAdminExport200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.GetAdminExport200TextcsvResponse{
		Body:          &buf,
		Headers:       gen.GetAdminExport200ResponseHeaders{ContentDisposition: disposition},
		ContentLength: int64(buf.Len()),
	}
}

// domainRowToGenRow maps a domain.ExportRow to the generated gen.ExportRow type.
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return gen.ExportRow{
		Id:           r.ID,
		Title:        r.Title,
		PromptType:   gen.PromptType(r.Type),
		CategorySlug: r.CategorySlug,
		AuthorName:   r.AuthorName,
		IsPublished:  r.IsPublished,
		IsFeatured:   r.IsFeatured,
		ViewCount:    r.ViewCount,
		CopyCount:    r.CopyCount,
		Versions:     r.Versions,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		Tags:         tags,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Timestamps are RFC 3339 in UTC. Tags are joined with "|".
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Title,
		string(r.Type),
		r.CategorySlug,
		r.AuthorName,
		strconv.FormatBool(r.IsPublished),
		strconv.FormatBool(r.IsFeatured),
		strconv.FormatInt(r.ViewCount, 10),
		strconv.FormatInt(r.CopyCount, 10),
		strconv.Itoa(r.Versions),
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.UpdatedAt.UTC().Format(time.RFC3339),
		strings.Join(r.Tags, "|"),
	}
}
