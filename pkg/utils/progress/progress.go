package progress

import (
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// Bar tracks the number of files handled for one dataset
type Bar interface {
	Increment()
	Finish()
	// Abort stops rendering and keeps the current count
	Abort()
}

// Factory creates a Bar for total files with a description
type Factory func(total int, description string) Bar

type bar struct {
	pb *progressbar.ProgressBar
}

func (b *bar) Increment() {
	_ = b.pb.Add(1)
}

func (b *bar) Finish() {
	_ = b.pb.Finish()
	_ = b.pb.Close()
}

func (b *bar) Abort() {
	_ = b.pb.Exit()
}

// New returns a Factory rendering file-count bars on w.
// A nil w renders on an ANSI-aware stderr.
func New(w io.Writer) Factory {
	if w == nil {
		w = ansi.NewAnsiStderr()
	}

	return func(total int, description string) Bar {
		pb := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		_ = pb.RenderBlank()
		return &bar{pb: pb}
	}
}

type nopBar struct{}

func (nopBar) Increment() {}
func (nopBar) Finish()    {}
func (nopBar) Abort()     {}

// Nop returns a Factory whose bars render nothing
func Nop() Factory {
	return func(int, string) Bar {
		return nopBar{}
	}
}
