package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("date must be YYYY-MM-DD")

	if err.Error() != "date must be YYYY-MM-DD" {
		t.Errorf("expected 'date must be YYYY-MM-DD', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("page_size out of range")
	err := apperr.NewValidationWrap("invalid search paging", inner)

	if err.Error() != "invalid search paging: page_size out of range" {
		t.Errorf("expected 'invalid search paging: page_size out of range', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("page must be at least 1")

	wrapped := fmt.Errorf("search failed: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "page must be at least 1" {
		t.Errorf("expected 'page must be at least 1', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database is locked")
	wrapped := fmt.Errorf("handler error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestQueryExecutionError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("no such table: documents")
	err := apperr.NewQueryExecution("SELECT 1", inner)

	wrapped := fmt.Errorf("window counts: %w", err)

	var qe *apperr.QueryExecutionError
	if !errors.As(wrapped, &qe) {
		t.Fatal("errors.As should find QueryExecutionError")
	}
	if qe.Query != "SELECT 1" {
		t.Errorf("expected query to be kept, got %q", qe.Query)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("expected store error to be reachable")
	}
}

func TestCatalogSyncError_Message(t *testing.T) {
	err := apperr.NewCatalogSync("sites.yaml", fmt.Errorf("file does not exist"))
	if err.Error() != "catalog sync from sites.yaml failed: file does not exist" {
		t.Errorf("unexpected message %q", err.Error())
	}

	noSource := apperr.NewCatalogSync("", fmt.Errorf("boom"))
	if noSource.Error() != "catalog sync failed: boom" {
		t.Errorf("unexpected message %q", noSource.Error())
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := apperr.NewNotFound("log file", "2026-01-01.log")
	if err.Error() != "log file not found: 2026-01-01.log" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
