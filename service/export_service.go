package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/InaamJr/Axceria/models"
	"github.com/InaamJr/Axceria/utils"
)

// CatalogLister is the slice of the catalog the export service needs.
type CatalogLister interface {
	All() []models.Product
	Categories() []string
}

// ExportService renders printable views (catalog sheet, gift box summary)
// as HTML and prints them to PDF through headless Chrome.
type ExportService struct {
	catalog CatalogLister
	baseURL string
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// NewExportService creates a new ExportService. baseURL is where chromedp
// reaches this server's render endpoints.
func NewExportService(catalog CatalogLister, baseURL string) *ExportService {
	return &ExportService{
		catalog: catalog,
		baseURL: baseURL,
	}
}

type catalogExportLine struct {
	Product models.Product
	Price   string
}

// RenderCatalogHTML renders the printable catalog sheet.
func (s *ExportService) RenderCatalogHTML() (string, error) {
	products := s.catalog.All()
	lines := make([]catalogExportLine, 0, len(products))
	for _, p := range products {
		lines = append(lines, catalogExportLine{
			Product: p,
			Price:   utils.FormatLKR(p.Price),
		})
	}

	templateData := struct {
		Lines      []catalogExportLine
		Categories []string
	}{
		Lines:      lines,
		Categories: s.catalog.Categories(),
	}

	return renderTemplate("export_catalog.html", templateData)
}

type boxExportLine struct {
	Item   models.LineItem
	Amount string
}

// RenderBoxHTML renders the printable gift box summary.
func (s *ExportService) RenderBoxHTML(snapshot models.BoxSnapshot) (string, error) {
	lines := make([]boxExportLine, 0, len(snapshot.Items))
	for _, it := range snapshot.Items {
		lines = append(lines, boxExportLine{
			Item:   it,
			Amount: utils.FormatLKR(it.UnitPrice * int64(it.Quantity)),
		})
	}

	templateData := struct {
		Box      models.BoxSnapshot
		Lines    []boxExportLine
		Subtotal string
	}{
		Box:      snapshot,
		Lines:    lines,
		Subtotal: utils.FormatLKR(snapshot.Subtotal),
	}

	return renderTemplate("export_box.html", templateData)
}

func renderTemplate(name string, data interface{}) (string, error) {
	templatePath := filepath.Join("templates", name)
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the render endpoint at renderPath (e.g.
// "/admin/export/render/catalog") to an A4 PDF using chromedp.
func (s *ExportService) GeneratePDF(ctx context.Context, renderPath string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.baseURL + renderPath

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second), // Let images settle
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69", page breaks handled by CSS
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
