package normalizer

import (
	"errors"
	"strings"
	"testing"

	"noticias/internal/models"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(DefaultPolicy(), nil)
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(DefaultPolicy(), nil)

	raw := []models.RawArticle{
		{Title: "Short", Author: "A B", Body: "Valid text content longer"},
		{Title: "Valid Title", Author: "", Body: "Valid text content longer"},
		{Title: "Valid Title", Author: "john doe", Body: "Short"},
		{Title: "Valid Title", Author: "john doe", Body: "Valid text content OK"},
	}

	result := p.Process(raw)

	if len(result.Articles) != 1 {
		t.Fatalf("Articles = %d, want 1", len(result.Articles))
	}

	valid := result.Articles[0]
	if valid.Author != "John Doe" || valid.Title != "Valid Title" {
		t.Errorf("accepted article = %+v", valid)
	}

	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}

	if len(result.Rejections) != 2 {
		t.Fatalf("Rejections = %d, want 2", len(result.Rejections))
	}

	first := result.Rejections[0]
	if first.Kind != KindTooShort || first.Field != FieldTitle || first.Value != "Short" || first.Index != 0 {
		t.Errorf("first rejection = %+v", first)
	}

	second := result.Rejections[1]
	if second.Field != FieldBody || second.Index != 2 {
		t.Errorf("second rejection = %+v", second)
	}

	if !errors.Is(&second, ErrTooShort) {
		t.Error("rejection does not unwrap to ErrTooShort")
	}

	if !strings.Contains(result.String(), "Accepted: 1") {
		t.Errorf("String() = %s", result.String())
	}
}

func TestProcessor_Process_PreservesOrderAndInput(t *testing.T) {
	p := NewProcessor(DefaultPolicy(), nil)

	raw := []models.RawArticle{
		{Title: "Third title here", Author: "  zoe  ", Body: "Body number three"},
		{Title: "Programa educativo digital", Author: "                   ", Body: "Body number blank"},
		{Title: "First title here", Author: "ana lópez", Body: "Body number one."},
	}

	result := p.Process(raw)

	if len(result.Articles) != 2 {
		t.Fatalf("Articles = %d, want 2", len(result.Articles))
	}

	if result.Articles[0].Author != "Zoe" || result.Articles[1].Author != "Ana López" {
		t.Errorf("order not preserved: %+v", result.Articles)
	}

	if raw[0].Author != "  zoe  " {
		t.Error("Process modified its input")
	}

	if result.Skipped != 1 || len(result.Rejections) != 0 {
		t.Errorf("whitespace-only author should be skipped silently: %s", result.String())
	}
}

func TestProcessor_Process_Empty(t *testing.T) {
	result := NewProcessor(DefaultPolicy(), nil).Process(nil)

	if result.Total != 0 || len(result.Articles) != 0 || result.Rejections == nil {
		t.Errorf("unexpected result for empty input: %+v", result)
	}
}
