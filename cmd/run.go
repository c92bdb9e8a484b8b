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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/ctu2d/InputParameters"
	"github.com/notargets/ctu2d/model_problems/Euler2D"
)

type Model2D struct {
	ICFile    string
	Profile   bool
	ProcLimit int
}

const exampleFile = `
########################################
Title: "Sod Shock Tube"
CFL: 0.8
FinalTime: 0.2
InitType: sod # sod, sody, advect, contact or acousticpulse
Method: CTU # CTU or MOL
Nx: 128
Ny: 4
Riemann: HLLC # CGF, HLLC or Exact
Limiter: 2 # 0 = none, 1 = MC2, 2 = MC4
UseFlattening: true
CVisc: 0.1
BCs:
  XL: outflow
  XR: outflow
  YL: periodic
  YR: periodic
########################################
`

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Advance a model problem described by a YAML input file",
	Long:  `Advance a model problem described by a YAML input file until its final time`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters2D
		)
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		m2d.Profile, _ = cmd.Flags().GetBool("profile")
		m2d.ProcLimit = viper.GetInt("procLimit")
		if ip, err = processInput(m2d); err != nil {
			return
		}
		return Run2D(m2d, ip, logger)
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- InitType\n\t- Riemann")
	RunCmd.Flags().Bool("profile", false, "write a CPU profile of the run to the current directory")
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParameters2D, err error) {
	var (
		data []byte
	)
	if len(m2d.ICFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		return
	}
	if data, err = os.ReadFile(m2d.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParameters2D{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", m2d.ICFile, err)
		return
	}
	if m2d.ProcLimit != 0 {
		ip.ProcLimit = m2d.ProcLimit
	}
	return
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParameters2D, logger *zap.Logger) (err error) {
	var (
		c *Euler2D.Euler
	)
	if logger == nil {
		logger = zap.NewNop()
	}
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	ip.Print()
	if c, err = Euler2D.NewEuler(ip, Euler2D.WithLogger(logger), Euler2D.WithVerbose(true)); err != nil {
		return
	}
	return c.Solve()
}
