package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-climate/dsp/core"
	"github.com/cwbudde/algo-climate/dsp/filter/rolling"
	"github.com/cwbudde/algo-climate/grid"
	timestats "github.com/cwbudde/algo-climate/stats/time"
)

// Backgrounds accepted by RenderConfig.
const (
	BackgroundWhite = "white"
	BackgroundBlack = "black"
)

// ErrInvalidRender is returned for unusable render settings.
var ErrInvalidRender = errors.New("pipeline: invalid render configuration")

// PanelTitles names the entries of Bands.StdDev.
var PanelTitles = [3]string{"Original", "Low-Pass", "High-Pass"}

// RenderConfig carries the presentation settings of a band decomposition.
// Zero WindowSize selects the pipeline's window.
type RenderConfig struct {
	VMin       float64
	VMax       float64
	WindowSize int
	Background string
}

// DefaultRenderConfig returns range [0, 2], a 15-sample window and a white
// background.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		VMin:       0,
		VMax:       2,
		WindowSize: rolling.DefaultWindow,
		Background: BackgroundWhite,
	}
}

// Validate checks the render settings.
func (r RenderConfig) Validate() error {
	switch r.Background {
	case BackgroundWhite, BackgroundBlack:
	default:
		return fmt.Errorf("%w: background %q, want %q or %q", ErrInvalidRender, r.Background, BackgroundWhite, BackgroundBlack)
	}
	if r.VMin >= r.VMax {
		return fmt.Errorf("%w: vmin %g >= vmax %g", ErrInvalidRender, r.VMin, r.VMax)
	}
	if r.WindowSize < 0 {
		return fmt.Errorf("%w: window size %d", ErrInvalidRender, r.WindowSize)
	}
	return nil
}

// Bands is the low/high-pass decomposition of one anomaly variable.
type Bands struct {
	Original *grid.Series
	LowPass  *grid.Series
	HighPass *grid.Series

	// StdDev holds the per-cell temporal standard deviation of Original,
	// LowPass and HighPass, in PanelTitles order.
	StdDev [3]*grid.Series

	Render RenderConfig
}

// Bands decomposes the named anomaly variable into rolling-mean bands.
// Time steps where every cell is missing are dropped first.
func (p *Pipeline) Bands(variable string, render RenderConfig) (*Bands, error) {
	if render.WindowSize == 0 {
		render.WindowSize = p.cfg.WindowSize
	}
	if err := render.Validate(); err != nil {
		return nil, err
	}
	s, err := p.variable(variable)
	if err != nil {
		return nil, err
	}

	original := s.DropEmptyTimes()
	low, high, err := rolling.DecomposeGrid(original, render.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("pipeline: bands of %s: %w", variable, err)
	}

	b := &Bands{Original: original, LowPass: low, HighPass: high, Render: render}
	for k, band := range []*grid.Series{original, low, high} {
		if b.StdDev[k], err = timestats.StdDevMap(band); err != nil {
			return nil, fmt.Errorf("pipeline: %s std-dev of %s: %w", PanelTitles[k], variable, err)
		}
	}
	p.cfg.Logger.Printf("%s: %d time steps, %d valid samples, window %d",
		variable, original.NumTime(), core.CountValid(original.Valid), render.WindowSize)
	return b, nil
}
