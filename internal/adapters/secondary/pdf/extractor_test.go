package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestExtractor() *Extractor {
	return NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// buildPDF собирает минимальный PDF: одна страница на строку, шрифт Helvetica
func buildPDF(pages ...string) []byte {
	objects := make([]string, 0, 3+2*len(pages))

	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	)
	for i, text := range pages {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestExtractJoinsPagesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, buildPDF("FirstPage", "SecondPage"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := newTestExtractor().Extract(context.Background(), path)

	first := strings.Index(got, "FirstPage")
	second := strings.Index(got, "SecondPage")
	if first < 0 || second < 0 {
		t.Fatalf("both pages expected in %q", got)
	}
	if first > second {
		t.Errorf("pages out of order: %q", got)
	}
}

func TestExtractMissingFile(t *testing.T) {
	got := newTestExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestExtractNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("this is plain text, not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := newTestExtractor().Extract(context.Background(), path)
	if got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestExtractTruncatedPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := newTestExtractor().Extract(context.Background(), path)
	if got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestExtractCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := newTestExtractor().Extract(ctx, "whatever.pdf"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
