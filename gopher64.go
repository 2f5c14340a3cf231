// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gopher64/gopher64/gui"
	"github.com/gopher64/gopher64/gui/sdlplay"
	"github.com/gopher64/gopher64/gui/termplay"
	"github.com/gopher64/gopher64/hardware"
	"github.com/gopher64/gopher64/hardware/keyboard"
	"github.com/gopher64/gopher64/hardware/memory/rom"
	"github.com/gopher64/gopher64/hardware/tape"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/modalflag"
	"github.com/gopher64/gopher64/performance"
	"github.com/gopher64/gopher64/prgloader"
	"github.com/gopher64/gopher64/statsview"
	"github.com/gopher64/gopher64/television"
	"github.com/gopher64/gopher64/version"
	"github.com/gopher64/gopher64/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TERM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version and quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		v, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, v)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "TERM":
		err = term(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// machineFlags are the flags common to every mode.
type machineFlags struct {
	spec     *string
	roms     *string
	basic    *string
	kernal   *string
	chargen  *string
	fpsCap   *bool
	log      *bool
	stats    *bool
	wav      *string
	prgHash  *string
	tapeFile *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		spec:     md.AddString("tv", "PAL", "television specification: PAL, NTSC"),
		roms:     md.AddString("roms", "", "combined 64KiB ROM image"),
		basic:    md.AddString("basic", "", "BASIC ROM image"),
		kernal:   md.AddString("kernal", "", "KERNAL ROM image"),
		chargen:  md.AddString("chargen", "", "character generator ROM image"),
		fpsCap:   md.AddBool("fpscap", true, "cap fps to specification"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
		stats:    md.AddBool("statsview", false, "run stats server"),
		wav:      md.AddString("wav", "", "record audio to wav file"),
		prgHash:  md.AddString("hash", "", "fail attachment if the program hash does not match"),
		tapeFile: md.AddString("tape", "", "TAP image or tape audio recording to put in the datasette"),
	}
}

// prepareMachine builds the machine described by the common flags and
// attaches the program named by the remaining argument, if there is one.
func prepareMachine(md *modalflag.Modes, flgs machineFlags) (*hardware.C64, error) {
	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *flgs.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! statsview not in this build")
		}
	}

	tv, err := television.NewTelevision(*flgs.spec)
	if err != nil {
		return nil, err
	}

	tv.SetFPSCap(*flgs.fpsCap)

	c64, err := hardware.NewC64(tv)
	if err != nil {
		return nil, err
	}

	if *flgs.roms != "" {
		err = rom.LoadCombined(c64.Mem, *flgs.roms)
	} else {
		err = rom.Install(c64.Mem, *flgs.basic, *flgs.kernal, *flgs.chargen)
	}
	if err != nil {
		return nil, err
	}

	if *flgs.wav != "" {
		aw, err := wavwriter.New(*flgs.wav)
		if err != nil {
			return nil, err
		}
		tv.AddAudioMixer(aw)
	}

	if *flgs.tapeFile != "" {
		tp, err := tape.NewTape(*flgs.tapeFile)
		if err != nil {
			return nil, err
		}
		c64.AttachTape(tp)
	}

	c64.Reset()

	switch len(md.RemainingArgs()) {
	case 0:
		// nothing to attach
	case 1:
		if err := attach(c64, md.GetArg(0), *flgs.prgHash); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	return c64, nil
}

// attach a program or tape to the machine, deciding by file extension.
func attach(c64 *hardware.C64, filename string, hash string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tap", ".wav", ".mp3":
		tp, err := tape.NewTape(filename)
		if err != nil {
			return err
		}
		c64.AttachTape(tp)
		return nil
	}

	pl := prgloader.NewLoader(filename)
	pl.Hash = hash
	return c64.AttachPRG(&pl)
}

// run the machine against a gui until the user asks to stop.
func run(c64 *hardware.C64, scr gui.GUI) error {
	kb := keyboard.NewKeyboard(c64.Mem)

	events := make(chan gui.Event, 64)
	scr.SetEventChannel(events)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// number of continueCheck calls the STOP key is held down for. long
	// enough for a few KERNAL interrupts to see it
	const stopHoldCount = 200

	stopHold := 0
	performanceBrake := 0

	return c64.Run(func() (bool, error) {
		performanceBrake++
		if performanceBrake < hardware.PerformanceBrake {
			return true, nil
		}
		performanceBrake = 0

		if stopHold > 0 {
			stopHold--
			if stopHold == 0 {
				kb.ReleaseStop()
			}
		}

		select {
		case <-intChan:
			return false, nil

		case ev := <-events:
			switch ev.ID {
			case gui.EventQuit:
				return false, nil
			case gui.EventStop:
				kb.Stop()
				stopHold = stopHoldCount
			case gui.EventKeyboard:
				if d, ok := ev.Data.(gui.EventDataKeyboard); ok {
					kb.Queue(d.Rune)
				}
			}

		default:
		}

		return true, nil
	})
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	scale := md.AddFloat64("scale", 2.0, "window scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	c64, err := prepareMachine(md, flgs)
	if err != nil {
		return err
	}
	defer c64.TV.End()

	scr, err := sdlplay.NewSdlPlay(c64, float32(*scale))
	if err != nil {
		return err
	}

	return run(c64, scr)
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	c64, err := prepareMachine(md, flgs)
	if err != nil {
		return err
	}
	defer c64.TV.End()

	scr, err := termplay.NewTermPlay(c64)
	if err != nil {
		return err
	}

	return run(c64, scr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	profile := md.AddString("profile", "none", "profiles to generate: cpu, mem, all")
	duration := md.AddString("duration", "5s", "duration of measurement")
	uncapped := md.AddBool("uncapped", true, "run as fast as possible")
	stateGraph := md.AddString("memviz", "", "dump machine state graph to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	c64, err := prepareMachine(md, flgs)
	if err != nil {
		return err
	}
	defer c64.TV.End()

	if *stateGraph != "" {
		if err := performance.DumpStateGraph(c64, *stateGraph); err != nil {
			return err
		}
	}

	return performance.Check(os.Stdout, prof, c64, *uncapped, *duration)
}
