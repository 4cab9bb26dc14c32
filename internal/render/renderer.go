// Package render turns a parsed deck into a .pptx document using GoPPT.
package render

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"slidecraft/backend/internal/generator/deps"
	"slidecraft/backend/internal/model"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Page layout constants - 10in x 7.5in canvas (EMU)
const (
	emuPerInch = 914400

	slideWidth  = int64(10.0 * emuPerInch)
	slideHeight = int64(7.5 * emuPerInch)

	marginLeft = int64(0.5 * emuPerInch)

	contentBodyWidth  = int64(6.0 * emuPerInch)
	contentBodyHeight = int64(4.5 * emuPerInch)
	summaryBodyWidth  = int64(8.0 * emuPerInch)

	imageOffsetX = int64(7.0 * emuPerInch)
	imageOffsetY = int64(2.0 * emuPerInch)
	imageWidth   = int64(2.5 * emuPerInch)
	imageHeight  = int64(2.0 * emuPerInch)
)

// Font sizes (pt)
const (
	fontTitle       = 44
	fontSubtitle    = 24
	fontHeading     = 32
	fontBody        = 18
	fontSummaryBody = 20
)

// Renderer builds presentation documents from slide descriptors
type Renderer struct {
	images deps.ImageFetcher
}

// NewRenderer creates a renderer. images may be nil to disable stock photos.
func NewRenderer(images deps.ImageFetcher) *Renderer {
	return &Renderer{images: images}
}

// Build renders every slide descriptor in order. A failure on one slide is
// logged and skipped so one bad descriptor does not abort the document.
func (r *Renderer) Build(ctx context.Context, deck *model.Deck) *ppt.Presentation {
	p := ppt.New()
	p.GetDocumentProperties().Title = deck.Title
	p.GetDocumentProperties().Creator = "SlideCraft"

	for i, slide := range deck.Slides {
		if err := r.buildSlide(ctx, p, slide, i); err != nil {
			log.Printf("[RENDER] Error creating slide %d: %v", i+1, err)
		}
	}
	return p
}

// Bytes serializes a built presentation to pptx bytes.
func (r *Renderer) Bytes(p *ppt.Presentation) ([]byte, error) {
	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create pptx writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pptx: %w", err)
	}
	return buf.Bytes(), nil
}

// buildSlide dispatches by slide_type; unknown types render as content
// slides. Panics from the drawing layer are converted to errors.
func (r *Renderer) buildSlide(ctx context.Context, p *ppt.Presentation, sd model.Slide, index int) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render panic: %v", rec)
		}
	}()

	var slide *ppt.Slide
	if index == 0 {
		slide = p.GetActiveSlide()
	} else {
		slide = p.CreateSlide()
	}

	switch sd.SlideType {
	case model.SlideTypeTitle:
		r.buildTitleSlide(slide, sd)
	case model.SlideTypeSummary:
		r.buildSummarySlide(slide, sd)
	default:
		r.buildContentSlide(ctx, slide, sd, index)
	}
	return nil
}

// fillBackground covers the canvas with a solid fill in the requested color
func fillBackground(slide *ppt.Slide, colorName string) {
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(slideWidth).SetHeight(slideHeight)
	bg.SetFill(ppt.NewFill().SetSolid(BackgroundColor(colorName)))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func (r *Renderer) buildTitleSlide(slide *ppt.Slide, sd model.Slide) {
	fillBackground(slide, colorOrDefault(sd.BackgroundColor, "blue"))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(2.5 * emuPerInch))
	titleShape.SetWidth(int64(9.0 * emuPerInch)).SetHeight(int64(1.2 * emuPerInch))
	tr := titleShape.CreateTextRun(sd.Title)
	tr.GetFont().SetSize(fontTitle).SetBold(true).SetColor(ppt.NewColor(colorTitleText))
	alignCenter(titleShape.GetActiveParagraph())

	if sd.Subtitle != "" {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(marginLeft).SetOffsetY(int64(4.0 * emuPerInch))
		subShape.SetWidth(int64(9.0 * emuPerInch)).SetHeight(int64(0.8 * emuPerInch))
		str := subShape.CreateTextRun(sd.Subtitle)
		str.GetFont().SetSize(fontSubtitle).SetColor(ppt.NewColor(colorTitleText))
		alignCenter(subShape.GetActiveParagraph())
	}
}

func (r *Renderer) buildContentSlide(ctx context.Context, slide *ppt.Slide, sd model.Slide, index int) {
	fillBackground(slide, colorOrDefault(sd.BackgroundColor, "white"))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.5 * emuPerInch))
	titleShape.SetWidth(int64(9.0 * emuPerInch)).SetHeight(int64(1.0 * emuPerInch))
	tr := titleShape.CreateTextRun(sd.Title)
	tr.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(colorHeading))

	if len(sd.Content) > 0 {
		body := slide.CreateRichTextShape()
		body.SetOffsetX(marginLeft).SetOffsetY(int64(1.8 * emuPerInch))
		body.SetWidth(contentBodyWidth).SetHeight(contentBodyHeight)

		for i, bullet := range sd.Content {
			if i > 0 {
				body.CreateParagraph()
			}
			btr := body.CreateTextRun("• " + bullet)
			btr.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(colorBody))
		}
	}

	r.embedStockImage(ctx, slide, index)
}

func (r *Renderer) buildSummarySlide(slide *ppt.Slide, sd model.Slide) {
	fillBackground(slide, colorOrDefault(sd.BackgroundColor, "light_blue"))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.5 * emuPerInch))
	titleShape.SetWidth(int64(9.0 * emuPerInch)).SetHeight(int64(1.0 * emuPerInch))
	tr := titleShape.CreateTextRun(sd.Title)
	tr.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(colorHeading))

	if len(sd.Content) > 0 {
		body := slide.CreateRichTextShape()
		body.SetOffsetX(int64(1.0 * emuPerInch)).SetOffsetY(int64(1.8 * emuPerInch))
		body.SetWidth(summaryBodyWidth).SetHeight(contentBodyHeight)

		for i, bullet := range sd.Content {
			if i > 0 {
				body.CreateParagraph()
			}
			btr := body.CreateTextRun("• " + bullet)
			// First takeaway is emphasized
			if i == 0 {
				btr.GetFont().SetSize(fontSummaryBody).SetBold(true).SetColor(ppt.NewColor(colorAccentBlue))
			} else {
				btr.GetFont().SetSize(fontSummaryBody).SetColor(ppt.NewColor(colorBody))
			}
		}
	}
}

// embedStockImage fetches and places a stock photo; any failure is swallowed
// and the slide renders without an image.
func (r *Renderer) embedStockImage(ctx context.Context, slide *ppt.Slide, index int) {
	if r.images == nil {
		return
	}

	data, mimeType, err := r.images.Fetch(ctx, index)
	if err != nil {
		log.Printf("[RENDER] Image fetch for slide %d skipped: %v", index+1, err)
		return
	}

	img := slide.CreateDrawingShape()
	img.SetImageData(data, mimeType)
	img.SetOffsetX(imageOffsetX).SetOffsetY(imageOffsetY)
	img.SetWidth(imageWidth).SetHeight(imageHeight)
}

// colorOrDefault returns name, or the per-type default when empty
func colorOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
