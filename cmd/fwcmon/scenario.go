package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"a320fwc/parameters"
	"a320fwc/signal"
)

// scenarioStep is one named, held simulation condition, sustained for a
// fixed number of 1-second ticks before the feed advances to the next
// step. A replay file is just a newline-separated list of "name:ticks"
// pairs; this is the scripted-text-line analogue of rtl_adsb's "*hex;"
// message lines, generalized from a radio payload format to a scenario
// format since there is no real avionics bus to replay here.
type scenarioStep struct {
	name  string
	ticks int
}

// coldAndDarkInputs is the parked, powered-down, gear-down-and-locked
// baseline every scenario starts from and mutates one field at a time.
func coldAndDarkInputs() signal.Inputs {
	return signal.Inputs{
		LhLgCompressed1:    parameters.New(true),
		LhLgCompressed2:    parameters.New(true),
		EssLhLgCompressed:  parameters.NewDiscrete(true),
		NormLhLgCompressed: parameters.NewDiscrete(true),

		RadioHeight1: parameters.New(0.0),
		RadioHeight2: parameters.New(0.0),

		ComputedSpeed1: parameters.New(0.0),
		ComputedSpeed2: parameters.New(0.0),
		ComputedSpeed3: parameters.New(0.0),

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

// builtinScenario is used when fwcmon is started without -replay: a full
// cold-and-dark to post-flight-shutdown walk, exercising every ground
// phase this core derives.
var builtinScenario = []scenarioStep{
	{"cold", 5},
	{"engine_start", 35},
	{"takeoff_power", 5},
	{"above_80kt", 8},
	{"rejected_takeoff", 1},
	{"decelerated", 6},
	{"shutdown", 305},
}

// loadScenario reads a replay script from path, or returns the built-in
// scenario if path is empty.
func loadScenario(path string) ([]scenarioStep, error) {
	if path == "" {
		return builtinScenario, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loadScenario: %w", err)
	}
	defer f.Close()

	var steps []scenarioStep
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("loadScenario: malformed line %q, expected name:ticks", line)
		}
		ticks, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("loadScenario: malformed tick count in %q: %w", line, err)
		}
		steps = append(steps, scenarioStep{name: strings.TrimSpace(parts[0]), ticks: ticks})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loadScenario: %w", err)
	}
	return steps, nil
}

// buildInputs applies one named scenario step on top of prev, holding
// every field prev already set unless the step overrides it.
func buildInputs(name string, prev signal.Inputs) (signal.Inputs, error) {
	next := prev
	switch name {
	case "cold":
		next = coldAndDarkInputs()
	case "engine_start":
		next.Eng1MasterLeverSelectOn = parameters.New(true)
		next.Eng1CoreSpeedAtOrAboveIdle1 = parameters.New(true)
		next.Eng1CoreSpeedAtOrAboveIdle2 = parameters.New(true)
	case "takeoff_power":
		// The demo TakeoffPower implementation watches ToConfigTest as a
		// stand-in for "thrust levers at takeoff detent": see main.go.
		next.ToConfigTest = parameters.New(true)
	case "above_80kt":
		next.ComputedSpeed1 = parameters.New(90.0)
		next.ComputedSpeed2 = parameters.New(90.0)
		next.ComputedSpeed3 = parameters.New(90.0)
	case "rejected_takeoff":
		next.ToConfigTest = parameters.New(false)
	case "decelerated":
		next.ComputedSpeed1 = parameters.New(40.0)
		next.ComputedSpeed2 = parameters.New(40.0)
		next.ComputedSpeed3 = parameters.New(40.0)
	case "shutdown":
		next.Eng1MasterLeverSelectOn = parameters.New(false)
		next.Eng1CoreSpeedAtOrAboveIdle1 = parameters.New(false)
		next.Eng1CoreSpeedAtOrAboveIdle2 = parameters.New(false)
	default:
		return signal.Inputs{}, fmt.Errorf("buildInputs: unknown scenario step %q", name)
	}
	return next, nil
}

// startFeed runs steps against a 1-tick-per-second clock, pushing the
// resulting signal.Inputs to out until ctx is cancelled or the scenario
// runs out. It returns a function the caller blocks on for a clean
// shutdown, the same shape as rtl_adsb.StartReceive's stop closure,
// generalized to accept a context.Context instead of a caller-held
// process handle since there is no external process to kill here.
func startFeed(ctx context.Context, steps []scenarioStep, out chan<- signal.Inputs) func() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(out)

		prev := coldAndDarkInputs()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for _, step := range steps {
			for i := 0; i < step.ticks; i++ {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
				next, err := buildInputs(step.name, prev)
				if err != nil {
					return
				}
				prev = next
				select {
				case out <- next:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return func() { <-done }
}
