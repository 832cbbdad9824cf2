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
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybrota/avlmap"
)

var version = "0.1.0"

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗      ██████╗████████╗██╗
██╔══██╗██║   ██║██║     ██╔════╝╚══██╔══╝██║
███████║╚██╗ ██╔╝██║     ██║        ██║   ██║
██╔══██║ ╚████╔╝ ██║     ██║        ██║   ██║
██║  ██║  ╚██╔╝  ███████╗╚██████╗   ██║   ███████╗
╚═╝  ╚═╝   ╚═╝   ╚══════╝ ╚═════╝   ╚═╝   ╚══════╝
Poke at a self-balancing ordered map from your terminal [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = &defaultConfig
	}
	if !config.UI.Color {
		disableColors()
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run a script of tree operations",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo executes insert/remove/search/list operations from a script file ("-" reads stdin) against a fresh tree`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			script := cmd.Flag("script").Value.String()
			verify := cmd.Flag("verify").Value.String() == "true"

			ops, err := parseOpsFile(script)
			if err != nil {
				log.Fatalf("Error reading script: %v", err)
			}
			tree := avlmap.NewOrdered[string, string]()
			if err := applyOps(os.Stdout, tree, ops, verify); err != nil {
				log.Fatalf("Error applying script: %v", err)
			}
		},
	}
	cmdDemo.Flags().String("script", "-", "operations script file, - for stdin")
	cmdDemo.Flags().Bool("verify", false, "run a full invariant check after every operation")

	var cmdPrint = &cobra.Command{
		Use:   "print key=value [key=value ...]",
		Short: "Draw a tree built from the arguments as ASCII art",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			meta := cmd.Flag("meta").Value.String() == "true"
			tree, err := treeFromArgs(args)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			depth := tree.Fprint(os.Stdout, meta)
			fmt.Printf("\n%d entries, depth %d\n", tree.Len(), depth)
		},
	}
	cmdPrint.Flags().Bool("meta", false, "show value, height and balance factor per node")

	var cmdExplore = &cobra.Command{
		Use:   "explore key=value [key=value ...]",
		Short: "Browse a tree interactively",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI listing the entries in order, with height, balance and neighbor metadata for the selected node`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tree, err := treeFromArgs(args)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			if err := runExplorer(tree); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Bulk insert/remove benchmark with a height-bound check",
		Run: func(cmd *cobra.Command, args []string) {
			n := config.Bench.Inserts
			if flagN, err := cmd.Flags().GetInt("n"); err == nil && flagN > 0 {
				n = flagN
			}
			pattern := config.Bench.Pattern
			if flagPattern := cmd.Flag("pattern").Value.String(); flagPattern != "" {
				pattern = flagPattern
			}
			quiet := cmd.Flag("quiet").Value.String() == "true"
			if err := runBench(n, pattern, !quiet); err != nil {
				log.Fatalf("Bench failed: %v", err)
			}
		},
	}
	cmdBench.Flags().Int("n", 0, "number of keys to insert (default from config)")
	cmdBench.Flags().String("pattern", "", "key pattern: random or sorted (default from config)")
	cmdBench.Flags().Bool("quiet", false, "suppress the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the avlctl usage guide",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getUsageMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the avlctl configuration, creating it if missing",
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the avlctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlctl",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.AddCommand(cmdDemo, cmdPrint, cmdExplore, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}

// treeFromArgs builds a string tree from key=value command arguments;
// a bare key gets an empty value.
func treeFromArgs(args []string) (*avlmap.Tree[string, string], error) {
	tree := avlmap.NewOrdered[string, string]()
	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		if key == "" {
			return nil, fmt.Errorf("argument %q has an empty key", arg)
		}
		tree.Insert(key, value)
	}
	return tree, nil
}
