package diagfmt

import "github.com/fatih/color"

// painter holds per-call color instances so one render never flips the
// process-wide color.NoColor switch.
type painter struct {
	tag    *color.Color
	msg    *color.Color
	frame  *color.Color
	marker *color.Color
}

func newPainter(enabled bool) painter {
	p := painter{
		tag:    color.New(color.FgRed, color.Bold),
		msg:    color.New(color.Bold),
		frame:  color.New(color.FgBlue, color.Bold),
		marker: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.tag, p.msg, p.frame, p.marker} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
