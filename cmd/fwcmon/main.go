// Command fwcmon is a gocui + aurora live cockpit-style status monitor for
// the A320 ground-phase core, analogous to the teacher's aircraft table:
// a status line plus a scrolling log, redrawn once per simulation tick.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"
	. "github.com/logrusorgru/aurora"

	fwc "a320fwc"
	"a320fwc/logic"
	"a320fwc/signal"
)

// demoTakeoffPower is the monitor's stand-in for a real N1/N2/FADEC-driven
// TakeoffPower: it reports whatever the current scenario step last wrote
// into toPwr. CfmFlightPhases (the library default) always reports false;
// this exists so the demo can actually walk through phases 3/4/8/9.
type demoTakeoffPower struct{ toPwr bool }

func (d *demoTakeoffPower) Update(ctx logic.TickContext) {}
func (d *demoTakeoffPower) CfmFlex() bool                { return false }
func (d *demoTakeoffPower) Eng1Or2ToPwr() bool           { return d.toPwr }

type monitor struct {
	computer *fwc.Computer
	w        *fwc.MapReaderWriter
	top      *demoTakeoffPower

	tickCount int
	lastPhase int
	log       []string
}

var displayOutputs = []string{
	"fwc.ground.new_ground", "fwc.ground.lgciu_12_inv", "fwc.ground.ground_immediate", "fwc.ground.ground",
	"fwc.speed.above_80kt", "fwc.speed.adc_test_inhib",
	"fwc.engine.eng_1_not_running", "fwc.engine.eng_2_not_running",
	"fwc.engine.eng_1_and_2_not_running", "fwc.engine.one_eng_running", "fwc.engine.eng_1_or_2_running",
}

func (m *monitor) step(in signal.Inputs) {
	m.top.toPwr = in.ToConfigTest.Value()
	m.computer.Update(fwc.NewTickContext(time.Second, 0, 0, 15, false, 0), in, m.w)
	m.tickCount++

	phase := m.computer.Phase()
	if phase != m.lastPhase {
		m.log = append(m.log, fmt.Sprintf("t=%04ds  phase %d -> %d", m.tickCount, m.lastPhase, phase))
		if len(m.log) > 200 {
			m.log = m.log[len(m.log)-200:]
		}
	}
	m.lastPhase = phase
}

func (m *monitor) render(g *gocui.Gui) error {
	s, err := g.View("status")
	if err != nil {
		return err
	}
	s.Clear()
	fmt.Fprintf(s, " TICK: %05d  PHASE: %s  GROUND: %s  SPEED>80KT: %s\n",
		m.tickCount,
		Bold(Cyan(m.computer.Phase())),
		boolColor(m.computer.Ground()),
		boolColor(m.computer.AcSpeedAbove80Kt()))

	l, err := g.View("list")
	if err != nil {
		return err
	}
	l.Clear()
	fmt.Fprintln(l, " SIGNAL                                VALUE")
	fmt.Fprintln(l, " ======================================================")
	for _, name := range displayOutputs {
		fmt.Fprintln(l, Sprintf(Yellow(" %-36s  %s"), name, boolColor(m.w.Read(name) != 0)))
	}

	h, err := g.View("history")
	if err != nil {
		return err
	}
	h.Clear()
	start := 0
	if len(m.log) > 10 {
		start = len(m.log) - 10
	}
	for _, line := range m.log[start:] {
		fmt.Fprintln(h, line)
	}
	return nil
}

func boolColor(b bool) Value {
	if b {
		return Green("TRUE")
	}
	return Red("FALSE")
}

func layout(g *gocui.Gui) error {
	const maxX = 80
	_, maxY := g.Size()

	v, err := g.SetView("status", 0, 0, maxX-2, 2)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == gocui.ErrUnknownView {
		v.Title = " STATUS "
	}

	v, err = g.SetView("list", 0, 3, maxX-2, maxY-13)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == gocui.ErrUnknownView {
		v.Title = " SIGNALS "
	}

	v, err = g.SetView("history", 0, maxY-12, maxX-2, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == gocui.ErrUnknownView {
		v.Title = " PHASE TRANSITIONS "
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func main() {
	replayPath := flag.String("replay", "", "path to a scenario replay script (name:ticks per line); empty runs the built-in demo scenario")
	flag.Parse()

	steps, err := loadScenario(*replayPath)
	if err != nil {
		log.Fatalln("fwcmon:", err)
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	top := &demoTakeoffPower{}
	m := &monitor{
		computer: fwc.NewComputer(top, nil),
		w:        fwc.NewMapReaderWriter(),
		top:      top,
	}

	feed := make(chan signal.Inputs, 1)
	stop := startFeed(ctx, steps, feed)

	go func() {
		for in := range feed {
			m.step(in)
			g.Update(m.render)
		}
		cancel()
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}

	cancel()
	stop()
}
