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

	"github.com/spf13/cobra"

	"github.com/notargets/fdm2d/FD2D"
	"github.com/notargets/fdm2d/InputParameters"
	"github.com/notargets/fdm2d/model_problems/Wave2D"
)

// waveCmd represents the wave command
var waveCmd = &cobra.Command{
	Use:   "wave",
	Short: "Explicit leapfrog solution of the 2D wave equation",
	Long: `
Runs the explicit leapfrog scheme against a manufactured standing wave and
reports the discrete L2 error at each time step,

fdm2d wave -n 64 --nt 100 --cfl 0.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg = Wave2D.DefaultConfig()
			err error
		)
		ip := &InputParameters.WaveParameters{}
		if fileName, _ := cmd.Flags().GetString("input"); fileName != "" {
			var data []byte
			if data, err = os.ReadFile(fileName); err != nil {
				return err
			}
			if err = ip.Parse(data); err != nil {
				return err
			}
			ip.Print()
		} else {
			ip.N, _ = cmd.Flags().GetInt("n")
			ip.Nt, _ = cmd.Flags().GetInt("nt")
			ip.BC, _ = cmd.Flags().GetString("bc")
			ip.CFL, _ = cmd.Flags().GetFloat64("cfl")
			ip.WaveSpeed, _ = cmd.Flags().GetFloat64("c")
			ip.Mx, _ = cmd.Flags().GetInt("mx")
			ip.My, _ = cmd.Flags().GetInt("my")
			ip.StoreEvery, _ = cmd.Flags().GetInt("store")
		}
		if ip.BC == "" {
			ip.BC = cfg.BC.String()
		}
		if cfg.BC, err = FD2D.ParseBCType(ip.BC); err != nil {
			return err
		}
		cfg.CFL = ip.CFL
		cfg.C = ip.WaveSpeed
		cfg.Mx, cfg.My = ip.Mx, ip.My
		cfg.StoreEvery = ip.StoreEvery
		return runWave(cfg, ip.N, ip.Nt)
	},
}

func runWave(cfg Wave2D.Config, N, Nt int) (err error) {
	fmt.Printf("CFL = %8.4f, N = %d, Nt = %d, BC: %v, Modes: (%d,%d)\n\n",
		cfg.CFL, N, Nt, cfg.BC, cfg.Mx, cfg.My)
	var (
		res          *Wave2D.Result
		logFrequency = 50
	)
	if res, err = Wave2D.Solve(cfg, N, Nt); err != nil {
		return
	}
	fmt.Printf("h = %8.6f, dt = %8.6f\n", res.H, res.Dt)
	for i, e := range res.L2 {
		if i%logFrequency == 0 || i == len(res.L2)-1 {
			fmt.Printf("Time = %8.4f, l2_error[%d] = %10.3e\n",
				float64(i+1)*res.Dt, i, e)
		}
	}
	if len(res.Snapshots) != 0 {
		fmt.Printf("captured %d field snapshots\n", len(res.Snapshots))
	}
	return
}

func init() {
	rootCmd.AddCommand(waveCmd)
	def := Wave2D.DefaultConfig()
	waveCmd.Flags().IntP("n", "n", 64, "number of uniform mesh intervals per direction")
	waveCmd.Flags().Int("nt", 100, "number of time steps")
	waveCmd.Flags().String("bc", def.BC.String(), "boundary condition: Dirichlet or Neumann")
	waveCmd.Flags().Float64("cfl", def.CFL, "CFL number, must not exceed 1/sqrt(2)")
	waveCmd.Flags().Float64("c", def.C, "wave speed")
	waveCmd.Flags().Int("mx", def.Mx, "standing wave mode number in x")
	waveCmd.Flags().Int("my", def.My, "standing wave mode number in y")
	waveCmd.Flags().Int("store", 0, "capture every k-th field snapshot, 0 disables")
	waveCmd.Flags().StringP("input", "i", "", "YAML parameter file overriding the flags")
}
