// Command termframe-demo renders a small dashboard: a gauge and sparkline
// fed by a ticker, a selectable list, and a braille world map. Keys: j/k or
// arrow escape codes move the selection, q or ctrl-c quits.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lixenwraith/termframe"
	"github.com/lixenwraith/termframe/backend"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
	"github.com/lixenwraith/termframe/text"
	"github.com/lixenwraith/termframe/widgets"
	"github.com/lixenwraith/termframe/widgets/canvas"
)

func main() {
	be, err := backend.NewTerm(backend.DefaultTermOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "termframe-demo: %v\n", err)
		os.Exit(1)
	}
	term, err := termframe.New(be)
	if err != nil {
		be.Close()
		fmt.Fprintf(os.Stderr, "termframe-demo: %v\n", err)
		os.Exit(1)
	}

	err = run(term, be)
	be.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termframe-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(term *termframe.Terminal, be *backend.TermBackend) error {
	keys := make(chan byte, 16)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(keys)
				return
			}
			if n > 0 {
				keys <- buf[0]
			}
		}
	}()

	resized := make(chan struct{}, 1)
	be.SetResizeHandler(func(layout.Rect) {
		select {
		case resized <- struct{}{}:
		default:
		}
	})

	items := []widgets.ListItem{
		widgets.Item("eu-west ingest"),
		widgets.Item("us-east ingest"),
		widgets.Item("ap-south ingest"),
		widgets.Item("replication"),
		widgets.Item("compaction"),
	}
	var listState widgets.ListState
	listState.Select(0)

	history := make([]uint64, 0, 120)
	ratio := 0.0

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		history = append(history, uint64(rand.Intn(90)+10))
		if len(history) > cap(history) {
			history = history[1:]
		}
		ratio += 0.013
		if ratio > 1 {
			ratio = 0
		}

		if err := term.Draw(func(f *termframe.Frame) {
			rows := layout.Layout{
				Direction: layout.Vertical,
				Constraints: []layout.Constraint{
					layout.Length(3),
					layout.Length(4),
					layout.Min(8),
				},
			}.Split(f.Size())

			f.Render(widgets.Gauge{
				Block:      widgets.Block{Title: text.RawLine("Progress"), Borders: widgets.BorderAll},
				Ratio:      ratio,
				GaugeStyle: style.Style{Fg: style.Green},
			}, rows[0])

			f.Render(widgets.Sparkline{
				Block: widgets.Block{Title: text.RawLine("Throughput"), Borders: widgets.BorderAll},
				Data:  history,
				Style: style.Style{Fg: style.Yellow},
			}, rows[1])

			cols := layout.Layout{
				Direction: layout.Horizontal,
				Constraints: []layout.Constraint{
					layout.Percentage(30),
					layout.Percentage(70),
				},
			}.Split(rows[2])

			list := widgets.List{
				Block:           widgets.Block{Title: text.RawLine("Pipelines"), Borders: widgets.BorderAll},
				Items:           items,
				HighlightStyle:  style.Style{Mods: style.ModBold, Fg: style.Cyan},
				HighlightSymbol: "> ",
			}
			termframe.RenderStateful(f, list, cols[0], &listState)

			f.Render(canvas.Canvas{
				Block:   widgets.Block{Title: text.RawLine("Regions"), Borders: widgets.BorderAll},
				XBounds: [2]float64{-180, 180},
				YBounds: [2]float64{-90, 90},
				Marker:  symbols.MarkerBraille,
				Paint: func(ctx *canvas.Context) {
					ctx.Draw(canvas.Map{Resolution: canvas.MapHigh, Color: style.Gray})
					ctx.Layer()
					ctx.Draw(canvas.Points{
						Coords: [][2]float64{{-0.1, 51.5}, {-77, 39}, {77.2, 28.6}},
						Color:  style.Red,
					})
					ctx.Print(-30, -45, text.StyledLine("live", style.Style{Fg: style.Green}))
				},
			}, cols[1])
		}); err != nil {
			return err
		}

		select {
		case <-ticker.C:
		case <-resized:
		case key, ok := <-keys:
			if !ok {
				return nil
			}
			switch key {
			case 'q', 0x03:
				return nil
			case 'j':
				if listState.Selected != nil && *listState.Selected < len(items)-1 {
					listState.Select(*listState.Selected + 1)
				}
			case 'k':
				if listState.Selected != nil && *listState.Selected > 0 {
					listState.Select(*listState.Selected - 1)
				}
			}
		}
	}
}
