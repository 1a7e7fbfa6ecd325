// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	rdebug "runtime/debug"
	"slices"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/erigontech/ethbackend/cmd/utils"
	"github.com/erigontech/ethbackend/diagnostics"
	"github.com/erigontech/ethbackend/metrics"
	"github.com/erigontech/ethbackend/params"
	"github.com/erigontech/ethbackend/turbo/debug"
	"github.com/erigontech/ethbackend/turbo/logging"
	"github.com/erigontech/ethbackend/turbo/node"
)

func main() {
	defer func() {
		panicResult := recover()
		if panicResult == nil {
			return
		}

		log.Error("catch panic", "err", panicResult, "stack", string(rdebug.Stack()))
		os.Exit(1)
	}()

	app := makeApp()
	if err := app.Run(os.Args); err != nil {
		_, printErr := fmt.Fprintln(os.Stderr, err)
		if printErr != nil {
			log.Warn("Fprintln error", "err", printErr)
		}
		os.Exit(1)
	}
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ethbackend"
	app.Usage = "Execution backend serving the ETHBACKEND private api and the Engine API"
	app.Version = params.VersionWithCommit(params.GitCommit)
	app.Flags = slices.Concat(utils.DefaultFlags, utils.MetricFlags, logging.Flags, diagnostics.Flags, debug.Flags)
	app.Action = runEthBackend
	app.Commands = []*cli.Command{clientCommand()}
	return app
}

func runEthBackend(cliCtx *cli.Context) error {
	configFilePath := cliCtx.String(utils.ConfigFlag.Name)
	if configFilePath != "" {
		if err := setFlagsFromConfigFile(cliCtx, configFilePath); err != nil {
			return fmt.Errorf("failed setting config flags from yaml/toml file: %w", err)
		}
	}

	logger := logging.SetupLoggerCtx("ethbackend", cliCtx)
	logger.Info("Build info", "git_branch", params.GitBranch, "git_tag", params.GitTag, "git_commit", params.GitCommit)

	if err := debug.Setup(cliCtx, logger); err != nil {
		return err
	}
	defer debug.Exit()

	cfg, err := node.NewConfigUrfave(cliCtx, logger)
	if err != nil {
		return err
	}
	ethNode, err := node.New(cfg, logger)
	if err != nil {
		logger.Error("ethbackend startup", "err", err)
		return err
	}

	var metricsMux *http.ServeMux
	var metricsAddress string
	if cliCtx.Bool(utils.MetricsEnabledFlag.Name) {
		metricsAddress = fmt.Sprintf("%s:%d", cliCtx.String(utils.MetricsHTTPFlag.Name), cliCtx.Int(utils.MetricsPortFlag.Name))
		metricsMux = metrics.Setup(metricsAddress, logger)
	}
	diagnostics.Setup(cliCtx, metricsMux, metricsAddress, diagnostics.Sources{
		Eth:    ethNode.Eth(),
		DB:     ethNode.DB(),
		LogDir: logging.LogDirPath(cliCtx),
	}, logger)

	go debug.ListenSignals(ethNode, logger)

	if err := ethNode.Serve(context.Background()); err != nil {
		logger.Error("error while serving an ethbackend node", "err", err)
		return err
	}
	return nil
}
