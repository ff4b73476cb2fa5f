package progress

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// Bars renders export progress on the terminal: a state line plus one
// counter for downloaded images and one for processed images.
type Bars struct {
	download *progressbar.ProgressBar
	process  *progressbar.ProgressBar
	state    State
}

// NewBars creates terminal progress bars sized to the number of distinct
// image resources. Each resource produces exactly one download tick and one
// process tick, so the counters reach their totals even when slots share a
// resource.
func NewBars(totalResources int) *Bars {
	theme := progressbar.Theme{
		Saucer:        "=",
		SaucerHead:    ">",
		SaucerPadding: " ",
		BarStart:      "[",
		BarEnd:        "]",
	}

	download := progressbar.NewOptions(totalResources,
		progressbar.OptionSetDescription("Images downloaded"),
		progressbar.OptionShowCount(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(theme),
	)
	process := progressbar.NewOptions(totalResources,
		progressbar.OptionSetDescription("Images processed"),
		progressbar.OptionShowCount(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(theme),
	)

	return &Bars{
		download: download,
		process:  process,
	}
}

// SetState prints the new state on its own line so it survives bar redraws.
func (b *Bars) SetState(s State) {
	if s == b.state {
		return
	}
	b.state = s
	fmt.Printf("\n%s...\n", s)
}

func (b *Bars) TickDownload() {
	_ = b.download.Add(1)
}

func (b *Bars) TickProcess() {
	_ = b.process.Add(1)
}
