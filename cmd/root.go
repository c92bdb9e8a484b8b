/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	logger  *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ctu2d",
	Short: "Unsplit corner transport upwind solver for the 2D compressible Euler equations",
	Long: `
Second order Godunov solver on a uniform cartesian grid. Interface states are
traced in characteristic variables, corrected with transverse fluxes and
passed to a CGF, HLLC or exact Riemann solver.

ctu2d run -I input.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ctu2d.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug level logging")
	rootCmd.PersistentFlags().IntP("procLimit", "p", 0, "maximum goroutines per stage, 0 uses every CPU")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("procLimit", rootCmd.PersistentFlags().Lookup("procLimit"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".ctu2d" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".ctu2d")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
