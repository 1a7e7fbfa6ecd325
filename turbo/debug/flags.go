// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package debug

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"sync"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
)

var (
	cpuprofileFlag = cli.StringFlag{
		Name:  "pprof.cpuprofile",
		Usage: "Write CPU profile to the given file",
	}
	traceFlag = cli.StringFlag{
		Name:  "trace",
		Usage: "Write execution trace to the given file",
	}
)

// Flags holds all command-line flags required for debugging.
var Flags = []cli.Flag{&cpuprofileFlag, &traceFlag}

type handler struct {
	mu        sync.Mutex
	cpuFile   *os.File
	traceFile *os.File
}

var Handler = new(handler)

// Setup starts the profiles requested on the command line. It should be
// called as early as possible in the program.
func Setup(ctx *cli.Context, logger log.Logger) error {
	RaiseFdLimit(logger)

	if traceFile := ctx.String(traceFlag.Name); traceFile != "" {
		if err := Handler.StartGoTrace(traceFile); err != nil {
			return err
		}
		logger.Info("Go tracing started", "dump", traceFile)
	}
	if cpuFile := ctx.String(cpuprofileFlag.Name); cpuFile != "" {
		if err := Handler.StartCPUProfile(cpuFile); err != nil {
			return err
		}
		logger.Info("CPU profiling started", "dump", cpuFile)
	}
	return nil
}

func (h *handler) StartCPUProfile(file string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cpuFile != nil {
		return fmt.Errorf("CPU profiling already in progress")
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return err
	}
	h.cpuFile = f
	return nil
}

func (h *handler) StopCPUProfile() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cpuFile == nil {
		return fmt.Errorf("CPU profiling not in progress")
	}
	pprof.StopCPUProfile()
	err := h.cpuFile.Close()
	h.cpuFile = nil
	return err
}

func (h *handler) StartGoTrace(file string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.traceFile != nil {
		return fmt.Errorf("trace already in progress")
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := trace.Start(f); err != nil {
		f.Close()
		return err
	}
	h.traceFile = f
	return nil
}

func (h *handler) StopGoTrace() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.traceFile == nil {
		return fmt.Errorf("trace not in progress")
	}
	trace.Stop()
	err := h.traceFile.Close()
	h.traceFile = nil
	return err
}

// Exit stops all running profiles, flushing their output to the
// respective file.
func Exit() {
	_ = Handler.StopCPUProfile()
	_ = Handler.StopGoTrace()
}
