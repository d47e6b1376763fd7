// This example program drives the A320 ground-phase core through a short
// scripted scenario, printing each flight phase transition to the console
// until the scenario ends or Ctrl+C is pressed.
package main

import (
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	fwc "a320fwc"
	"a320fwc/parameters"
	"a320fwc/signal"
)

func coldAndDark() signal.Inputs {
	return signal.Inputs{
		LhLgCompressed1:    parameters.New(true),
		LhLgCompressed2:    parameters.New(true),
		EssLhLgCompressed:  parameters.NewDiscrete(true),
		NormLhLgCompressed: parameters.NewDiscrete(true),
		RadioHeight1:       parameters.New(0.0),
		RadioHeight2:       parameters.New(0.0),
		ComputedSpeed1:     parameters.New(0.0),
		ComputedSpeed2:     parameters.New(0.0),
		ComputedSpeed3:     parameters.New(0.0),

		Eng1MasterLeverSelectOn: parameters.New(false),
		Eng2MasterLeverSelectOn: parameters.New(false),

		Eng1CoreSpeedAtOrAboveIdle1: parameters.New(false),
		Eng1CoreSpeedAtOrAboveIdle2: parameters.New(false),
		Eng2CoreSpeedAtOrAboveIdle1: parameters.New(false),
		Eng2CoreSpeedAtOrAboveIdle2: parameters.New(false),

		Eng1FirePbOut: parameters.NewDiscrete(false),
		ToConfigTest:  parameters.New(false),
	}
}

func main() {
	sigs := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	ossignal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Println()
		done <- true
	}()

	computer := fwc.NewComputer(nil, nil)
	w := fwc.NewMapReaderWriter()

	in := coldAndDark()
	lastPhase := -1
	ticks := 0

	for {
		select {
		case <-done:
			fmt.Println("exiting")
			return
		default:
		}

		// At tick 5, start engine 1. At tick 40, cut it back off so the
		// scenario settles and the example terminates with a short,
		// readable transcript.
		switch ticks {
		case 5:
			in.Eng1MasterLeverSelectOn = parameters.New(true)
			in.Eng1CoreSpeedAtOrAboveIdle1 = parameters.New(true)
			in.Eng1CoreSpeedAtOrAboveIdle2 = parameters.New(true)
		case 40:
			in.Eng1MasterLeverSelectOn = parameters.New(false)
			in.Eng1CoreSpeedAtOrAboveIdle1 = parameters.New(false)
			in.Eng1CoreSpeedAtOrAboveIdle2 = parameters.New(false)
		}

		computer.Update(fwc.NewTickContext(time.Second, 0, 0, 15, false, 0), in, w)
		if phase := computer.Phase(); phase != lastPhase {
			fmt.Printf("t=%03ds  phase %d -> %d\n", ticks, lastPhase, phase)
			lastPhase = phase
		}

		ticks++
		if ticks > 100 {
			fmt.Println("scenario complete")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
