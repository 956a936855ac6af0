package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/recibospro/recibos-api/internal/application/receipts"
	"github.com/recibospro/recibos-api/pkg/config"
)

// Dimensiones A4 apaisado en pulgadas (Chrome trabaja en pulgadas).
const (
	a4WidthInches  = 210.0 / 25.4
	a4HeightInches = 297.0 / 25.4
	marginInches   = 10.0 / 25.4 // 1 cm, seguro para impresión
)

// Asegura que ChromeRenderer implementa receipts.PageRenderer.
var _ receipts.PageRenderer = (*ChromeRenderer)(nil)

// ChromeRenderer convierte HTML a PDF vía Chrome DevTools Protocol.
// El allocator (proceso Chrome o conexión remota) vive lo que vive la app;
// cada render abre su propio tab y lo cierra al terminar, falle o no.
type ChromeRenderer struct {
	cfg         config.RenderConfig
	log         zerolog.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeRenderer prepara el allocator de Chrome según configuración:
// con RENDER_CHROME_URL apunta a una instancia remota, si no lanza un
// proceso local headless.
func NewChromeRenderer(cfg config.RenderConfig, log zerolog.Logger) *ChromeRenderer {
	r := &ChromeRenderer{cfg: cfg, log: log}

	if cfg.ChromeURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.ChromeURL)
		return r
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // importante en Docker
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// RenderPDF imprime el HTML a PDF: A4 apaisado, fondos habilitados,
// márgenes de 1 cm. El tab se libera siempre vía defer.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("HTML vacío")
	}

	timeout := time.Duration(r.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	tabCtx, tabCancel := chromedp.NewContext(r.allocCtx)
	defer tabCancel()
	tabCtx, cancel := context.WithTimeout(tabCtx, timeout)
	defer cancel()

	// Si el request se cancela, se cierra también el tab.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	start := time.Now()
	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithLandscape(true).
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginRight(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if tabCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("render PDF: timeout tras %v: %w", timeout, err)
		}
		r.log.Error().Err(err).Msg("fallo el render del PDF")
		return nil, fmt.Errorf("render PDF: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("render PDF: documento vacío")
	}

	r.log.Debug().
		Int("bytes", len(pdf)).
		Dur("duracion", time.Since(start)).
		Msg("PDF generado")
	return pdf, nil
}

// Close libera el allocator (cierra el proceso Chrome local si lo hay).
func (r *ChromeRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}
