// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avlkit/avl"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

// the reference scenario run by "avlkit demo"
const demoScript = `
new main 10 20 30 40 50 25 60
inorder main
count main
search main 20
validate main
delete main 30
inorder main
validate main
new other 1 2 3 23 11 124 12 5
merge main other
inorder main
validate main
split main 20 left right
inorder left
inorder right
validate left
validate right
print left
print right
`

// app bundles what every command needs
type app struct {
	config *Config
	styles *Styles
	logger *slog.Logger
	loader *KeyLoader
}

func newApp(configPath string, verbose, noColor bool) *app {
	config, err := LoadConfig(configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = defaults()
	}
	logger := newLogger(os.Stderr, config.LogLevel, verbose)
	return &app{
		config: config,
		styles: NewStyles(config.Display.Color && !noColor),
		logger: logger,
		loader: NewKeyLoader(config.Loader, os.Stderr),
	}
}

func (a *app) workspace() *Workspace {
	return NewWorkspace(a.config, a.loader, a.styles, a.logger)
}

// buildTree creates a tree from positional keys and an optional key file
func (a *app) buildTree(args []string, file string) (*avl.Tree[int], error) {
	keys, err := parseKeyArgs(args)
	if err != nil {
		return nil, err
	}
	tree := avl.New(keys...)
	if file != "" {
		stats, err := a.loader.LoadFile(file, tree)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("keys loaded", "file", file, "stats", stats.String())
	}
	return tree, nil
}

// newRootCmd assembles the avlkit command tree. Positional keys that
// start with '-' have to follow "--", otherwise they parse as flags.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		noColor    bool
		a          *app
	)

	var rootCmd = &cobra.Command{
		Use:     "avlkit",
		Version: version,
		Short:   "Build, inspect, split and merge AVL trees",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a = newApp(configPath, verbose, noColor)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage(a.config.Display.DiagramWidth))
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.avlkit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the reference insert, delete, merge and split scenario",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ws := a.workspace()
			if err := ws.RunScript(strings.NewReader(demoScript), os.Stdout, true); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}

	var buildFile string
	var buildPrint bool
	var cmdBuild = &cobra.Command{
		Use:     "build [flags] [--] [KEY...]",
		Short:   "Build a tree and print its traversals",
		Example: "  avlkit build 10 20 30\n  avlkit build -p -- -5 0 5",
		Args:    cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tree, err := a.buildTree(args, buildFile)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
			out := cmd.OutOrStdout()
			writeSummary(out, "tree", tree, a.styles)
			if buildPrint {
				fmt.Fprint(out, diagramString(tree))
			}
		},
	}
	cmdBuild.Flags().StringVarP(&buildFile, "file", "f", "", "read keys from file")
	cmdBuild.Flags().BoolVarP(&buildPrint, "print", "p", false, "print a diagram of the tree")

	var splitFile string
	var cmdSplit = &cobra.Command{
		Use:     "split [flags] [--] KEY [KEY...]",
		Short:   "Build a tree from keys and split it around KEY",
		Example: "  avlkit split 20 10 20 30\n  avlkit split -- -3 -10 -3 4",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pivot, err := parseKey(args[0])
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			tree, err := a.buildTree(args[1:], splitFile)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
			left, right, found := tree.SplitFound(pivot)
			out := cmd.OutOrStdout()
			writeSummary(out, fmt.Sprintf("keys < %d", pivot), left, a.styles)
			writeSummary(out, fmt.Sprintf("keys > %d", pivot), right, a.styles)
			if found {
				fmt.Fprintln(out, a.styles.Muted.Render(fmt.Sprintf("pivot %d was consumed by the split", pivot)))
			}
		},
	}
	cmdSplit.Flags().StringVarP(&splitFile, "file", "f", "", "read keys from file")

	var dotFile, dotName string
	var dotCopy bool
	var cmdDot = &cobra.Command{
		Use:     "dot [flags] [--] [KEY...]",
		Short:   "Print Graphviz DOT text for a tree",
		Example: "  avlkit dot --name demo -- -1 0 1",
		Args:    cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tree, err := a.buildTree(args, dotFile)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
			text := dotString(dotName, tree)
			if dotCopy {
				if err := clipboard.WriteAll(text); err != nil {
					log.Fatalf("Failed to copy to clipboard: %v", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), a.styles.Success.Render("DOT copied to clipboard"))
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
		},
	}
	cmdDot.Flags().StringVarP(&dotFile, "file", "f", "", "read keys from file")
	cmdDot.Flags().StringVar(&dotName, "name", "avl", "graph name")
	cmdDot.Flags().BoolVar(&dotCopy, "copy", false, "copy the DOT text to the clipboard")

	var runWatch bool
	var cmdRun = &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Execute a script of tree statements",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := args[0]
			runOnce := func() error {
				file, err := os.Open(path)
				if err != nil {
					return err
				}
				defer file.Close()
				// every run starts from an empty workspace
				return a.workspace().RunScript(file, os.Stdout, runWatch)
			}

			if !runWatch {
				if err := runOnce(); err != nil {
					log.Fatalf("Script failed: %v", err)
				}
				return
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rerun := func() {
				fmt.Println(a.styles.Title.Render("── " + path + " ──"))
				if err := runOnce(); err != nil {
					fmt.Fprintln(os.Stderr, a.styles.Error.Render(err.Error()))
				}
			}
			rerun()
			if err := watchFile(ctx, path, a.logger, rerun); err != nil {
				log.Fatalf("Watch failed: %v", err)
			}
		},
	}
	cmdRun.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run the script whenever it changes")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell over the script language",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runShell(a.workspace(), a.styles); err != nil {
				log.Fatalf("Shell failed: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the avlkit configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(os.Stdout, configPath, a.styles); err != nil {
				log.Fatalf("Failed to show settings: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the avlkit usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage(a.config.Display.DiagramWidth))
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(cmdDemo, cmdBuild, cmdSplit, cmdDot, cmdRun, cmdShell, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
