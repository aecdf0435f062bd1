// Package cards renders cocktail recipes as vertical book-style PNG
// cards: a banner with a glass illustration, the title and base spirit,
// an ingredient table in oz and ml, and wrapped instructions.
package cards

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"mixmaster/internal/errors"
	"mixmaster/internal/output"
	"mixmaster/internal/recipe"
)

// Card canvas dimensions.
const (
	CardWidth  = 900
	CardHeight = 1400
)

const (
	bannerHeight = 220
	sideMargin   = 90
	lineSpacing  = 34
)

// DefaultOutputDir is where exported cards land unless configured
// otherwise.
const DefaultOutputDir = "cards"

// Renderer draws cocktails onto card canvases. Font faces are parsed
// once at construction.
type Renderer struct {
	title   font.Face
	section font.Face
	body    font.Face
	small   font.Face
}

// NewRenderer builds a renderer with the embedded Go fonts.
func NewRenderer() (*Renderer, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, renderErr("failed to parse bold font", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, renderErr("failed to parse regular font", err)
	}
	return &Renderer{
		title:   truetype.NewFace(bold, &truetype.Options{Size: 40}),
		section: truetype.NewFace(bold, &truetype.Options{Size: 26}),
		body:    truetype.NewFace(regular, &truetype.Options{Size: 22}),
		small:   truetype.NewFace(regular, &truetype.Options{Size: 18}),
	}, nil
}

// Render draws the cocktail onto a fresh card canvas. Ingredient
// amounts are scaled for a drink of totalOz; zero means the default
// volume.
func (r *Renderer) Render(c *recipe.Cocktail, totalOz float64) (image.Image, error) {
	if c == nil || len(c.Ingredients) == 0 {
		return nil, renderErr("cannot render an empty recipe", nil)
	}

	dc := gg.NewContext(CardWidth, CardHeight)

	// Paper-like background
	dc.SetRGB255(248, 245, 238)
	dc.Clear()

	r.drawBanner(dc)

	y := float64(bannerHeight + 40)
	y = r.drawTitle(dc, c, y)
	y = r.drawIngredients(dc, recipe.Scale(c, totalOz), y)
	r.drawInstructions(dc, c.Instructions, y)

	// Subtle footer rule
	footerY := float64(CardHeight - 60)
	dc.SetRGB255(230, 230, 230)
	dc.SetLineWidth(1)
	dc.DrawLine(sideMargin, footerY, CardWidth-sideMargin, footerY)
	dc.Stroke()

	return dc.Image(), nil
}

// WritePNG renders the cocktail and saves it under path, creating
// parent directories as needed.
func (r *Renderer) WritePNG(c *recipe.Cocktail, path string, totalOz float64) error {
	img, err := r.Render(c, totalOz)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return writeErr(fmt.Sprintf("failed to create card directory %s", dir), err)
		}
	}
	if err := gg.SavePNG(path, img); err != nil {
		return writeErr(fmt.Sprintf("failed to save card to %s", path), err)
	}
	return nil
}

// CardFileName derives a filesystem-safe PNG name from a recipe name.
func CardFileName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	stem := strings.TrimSuffix(b.String(), "_")
	if stem == "" {
		stem = "recipe"
	}
	return stem + ".png"
}

// drawBanner paints the top banner and its cocktail-glass figure.
func (r *Renderer) drawBanner(dc *gg.Context) {
	// Light mauve banner
	dc.SetRGB255(230, 210, 230)
	dc.DrawRectangle(0, 0, CardWidth, bannerHeight)
	dc.Fill()

	centerX := float64(CardWidth / 2)
	glassBottom := float64(bannerHeight - 40)

	// Bowl
	const (
		bowlWidth  = 140.0
		bowlHeight = 70.0
	)
	bowlTop := 70.0
	bowlBottom := bowlTop + bowlHeight
	dc.MoveTo(centerX-bowlWidth/2, bowlTop)
	dc.LineTo(centerX+bowlWidth/2, bowlTop)
	dc.LineTo(centerX+bowlWidth/4, bowlBottom)
	dc.LineTo(centerX-bowlWidth/4, bowlBottom)
	dc.ClosePath()
	dc.SetRGB255(255, 255, 255)
	dc.FillPreserve()
	dc.SetRGB255(180, 180, 180)
	dc.SetLineWidth(1)
	dc.Stroke()

	// Stem
	stemBottom := glassBottom - 25
	dc.DrawRectangle(centerX-5, bowlBottom, 10, stemBottom-bowlBottom)
	dc.SetRGB255(240, 240, 240)
	dc.FillPreserve()
	dc.SetRGB255(180, 180, 180)
	dc.Stroke()

	// Foot
	dc.DrawRectangle(centerX-40, stemBottom, 80, 8)
	dc.SetRGB255(240, 240, 240)
	dc.FillPreserve()
	dc.SetRGB255(180, 180, 180)
	dc.Stroke()
}

// drawTitle centers the name and base spirit line, then a divider.
// Returns the next content y.
func (r *Renderer) drawTitle(dc *gg.Context, c *recipe.Cocktail, y float64) float64 {
	dc.SetFontFace(r.title)
	dc.SetRGB255(30, 30, 30)
	dc.DrawStringAnchored(c.Name, CardWidth/2, y, 0.5, 0)
	_, th := dc.MeasureString(c.Name)
	y += th + 8

	if c.Spirit != "" {
		baseText := fmt.Sprintf("(base: %s)", c.Spirit)
		dc.SetFontFace(r.small)
		dc.SetRGB255(90, 90, 90)
		dc.DrawStringAnchored(baseText, CardWidth/2, y, 0.5, 0)
		_, bh := dc.MeasureString(baseText)
		y += bh + 20
	}

	dc.SetRGB255(210, 210, 210)
	dc.SetLineWidth(1)
	dc.DrawLine(sideMargin, y, CardWidth-sideMargin, y)
	dc.Stroke()
	return y + 36
}

// drawIngredients lays out the Item/oz/ml table. Accent amounts render
// as text in the oz column. Returns the next content y.
func (r *Renderer) drawIngredients(dc *gg.Context, lines []recipe.ScaledIngredient, y float64) float64 {
	dc.SetFontFace(r.section)
	dc.SetRGB255(30, 30, 30)
	dc.DrawStringAnchored("INGREDIENTS", sideMargin, y, 0, 0)
	y += lineSpacing

	const (
		nameX = float64(sideMargin)
		ozX   = float64(CardWidth / 2)
		mlX   = ozX + 130
	)

	dc.SetFontFace(r.small)
	dc.SetRGB255(90, 90, 90)
	dc.DrawStringAnchored("Item", nameX, y, 0, 0)
	dc.DrawStringAnchored("oz", ozX, y, 0, 0)
	dc.DrawStringAnchored("ml", mlX, y, 0, 0)
	y += 18

	dc.SetRGB255(225, 225, 225)
	dc.SetLineWidth(1)
	dc.DrawLine(sideMargin, y, CardWidth-sideMargin, y)
	dc.Stroke()
	y += 18

	dc.SetFontFace(r.body)
	dc.SetRGB255(30, 30, 30)
	for _, line := range lines {
		dc.DrawStringAnchored(line.Name, nameX, y, 0, 0)
		if line.Accent != "" {
			dc.DrawStringAnchored(line.Accent, ozX, y, 0, 0)
		} else {
			dc.DrawStringAnchored(output.FormatAmount(line.Oz, 2), ozX, y, 0, 0)
			dc.DrawStringAnchored(output.FormatAmount(line.Ml, 1), mlX, y, 0, 0)
		}
		y += lineSpacing
	}

	return y + 40
}

// drawInstructions writes the word-wrapped instruction block.
func (r *Renderer) drawInstructions(dc *gg.Context, instructions string, y float64) {
	dc.SetFontFace(r.section)
	dc.SetRGB255(30, 30, 30)
	dc.DrawStringAnchored("INSTRUCTIONS", sideMargin, y, 0, 0)
	y += lineSpacing

	if instructions == "" {
		instructions = "No instructions provided."
	}

	dc.SetFontFace(r.body)
	for _, line := range dc.WordWrap(instructions, CardWidth-2*sideMargin) {
		dc.DrawStringAnchored(line, sideMargin, y, 0, 0)
		y += lineSpacing
	}
}

func renderErr(message string, cause error) error {
	return errors.NewMixError(errors.CardRenderFailed, message, cause, nil)
}

func writeErr(message string, cause error) error {
	return errors.NewMixError(errors.CardWriteFailed, message, cause, nil)
}
