package facegen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/face-gen-mcp/internal/mask"
	"github.com/ironsheep/face-gen-mcp/internal/writer"
)

// Parameter bounds and defaults for generate_face.
const (
	DefaultCount        = 1
	DefaultSize         = 256
	DefaultBorderRadius = 32

	MinCount  = 1
	MaxCount  = 10
	MinSize   = 64
	MaxSize   = 1024
	MaxRadius = 512
)

// Params are the arguments of one generate_face invocation. Zero values
// mean "not provided" and take the documented defaults during
// validation; BorderRadius is a pointer because 0 is a meaningful
// radius.
type Params struct {
	OutputDir          string `json:"outputDir"`
	FileName           string `json:"fileName,omitempty"`
	Count              int    `json:"count,omitempty"`
	Width              int    `json:"width,omitempty"`
	Height             int    `json:"height,omitempty"`
	Shape              string `json:"shape,omitempty"`
	BorderRadius       *int   `json:"borderRadius,omitempty"`
	ReturnImageContent bool   `json:"returnImageContent,omitempty"`
}

// resolved is a Params with every default applied and every bound
// checked.
type resolved struct {
	OutputDir    string
	FileName     string
	Count        int
	Width        int
	Height       int
	Shape        mask.Shape
	BorderRadius int
	Inline       bool
}

// Fetcher retrieves one raw face image per call.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Generator drives the fetch, mask, emit pipeline for one invocation.
// It holds no state across calls; concurrent invocations are
// independent.
type Generator struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// New creates a Generator fetching images from fetcher.
func New(fetcher Fetcher, log zerolog.Logger) *Generator {
	return &Generator{fetcher: fetcher, log: log}
}

// Generate validates p, then sequentially produces count shaped face
// images. Validation precedes any filesystem side effect, and any
// single iteration's failure aborts the whole call: a failed call
// returns no artifacts, never a partial list.
//
// In file mode the output directory is created (idempotently) and one
// file is written per image. In inline mode the filesystem is not
// touched at all and each artifact carries base64 PNG content.
func (g *Generator) Generate(ctx context.Context, p Params) ([]*writer.Artifact, error) {
	v, err := validate(p)
	if err != nil {
		return nil, err
	}

	if !v.Inline {
		if err := writer.EnsureDir(v.OutputDir); err != nil {
			return nil, classify(err)
		}
	}

	artifacts := make([]*writer.Artifact, 0, v.Count)
	for i := 0; i < v.Count; i++ {
		raw, err := g.fetcher.Fetch(ctx)
		if err != nil {
			return nil, classify(err)
		}

		shaped, err := mask.Apply(raw, v.Width, v.Height, v.Shape, v.BorderRadius)
		if err != nil {
			return nil, classify(err)
		}

		name := fileName(v.FileName, i, v.Count)
		art, err := writer.Emit(shaped, v.OutputDir, name, v.Inline)
		if err != nil {
			return nil, classify(err)
		}

		g.log.Debug().Int("index", i).Str("name", name).Msg("generated face image")
		artifacts = append(artifacts, art)
	}

	return artifacts, nil
}

// validate applies defaults and bounds-checks every field. The default
// file name is derived from the current time here, per request, not
// when the tool descriptor is built.
func validate(p Params) (resolved, error) {
	v := resolved{
		OutputDir:    p.OutputDir,
		FileName:     p.FileName,
		Count:        p.Count,
		Width:        p.Width,
		Height:       p.Height,
		Shape:        mask.Shape(p.Shape),
		BorderRadius: DefaultBorderRadius,
		Inline:       p.ReturnImageContent,
	}

	if v.OutputDir == "" {
		return v, invalidParams("outputDir is required")
	}
	if v.FileName == "" {
		v.FileName = "face_" + time.Now().Format("20060102_150405")
	}
	if v.Count == 0 {
		v.Count = DefaultCount
	}
	if v.Width == 0 {
		v.Width = DefaultSize
	}
	if v.Height == 0 {
		v.Height = DefaultSize
	}
	if v.Shape == "" {
		v.Shape = mask.Square
	}
	if p.BorderRadius != nil {
		v.BorderRadius = *p.BorderRadius
	}

	if v.Count < MinCount || v.Count > MaxCount {
		return v, invalidParams("count %d outside [%d,%d]", v.Count, MinCount, MaxCount)
	}
	if v.Width < MinSize || v.Width > MaxSize {
		return v, invalidParams("width %d outside [%d,%d]", v.Width, MinSize, MaxSize)
	}
	if v.Height < MinSize || v.Height > MaxSize {
		return v, invalidParams("height %d outside [%d,%d]", v.Height, MinSize, MaxSize)
	}
	if !v.Shape.Valid() {
		return v, invalidParams("shape %q is not one of square, circle, rounded", v.Shape)
	}
	if v.BorderRadius < 0 || v.BorderRadius > MaxRadius {
		return v, invalidParams("borderRadius %d outside [0,%d]", v.BorderRadius, MaxRadius)
	}

	return v, nil
}

// fileName derives the final name for iteration i. A trailing
// .jpg/.jpeg/.png extension on the base (case-insensitive) is stripped
// first; multi-image requests get a 0-indexed suffix so names within
// one call never collide.
func fileName(base string, i, count int) string {
	lower := strings.ToLower(base)
	for _, ext := range []string{".jpeg", ".jpg", ".png"} {
		if strings.HasSuffix(lower, ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	if count == 1 {
		return base + ".png"
	}
	return fmt.Sprintf("%s_%d.png", base, i)
}
