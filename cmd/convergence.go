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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/fdm2d/FD2D"
	"github.com/notargets/fdm2d/model_problems/Poisson2D"
	"github.com/notargets/fdm2d/model_problems/Wave2D"
)

// convergenceCmd represents the convergence command
var convergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Mesh refinement study reporting empirical convergence orders",
	Long: `
Runs the chosen solver across geometrically doubling resolutions and reduces
the error sequence to per-level empirical orders of accuracy,

fdm2d convergence --problem wave -m 4 --n0 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			problem, _ = cmd.Flags().GetString("problem")
			m, _       = cmd.Flags().GetInt("m")
			N0, _      = cmd.Flags().GetInt("n0")
			prof, _    = cmd.Flags().GetBool("profile")
			s          FD2D.RefinementSolver
		)
		if prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		switch problem {
		case "wave":
			cfg := Wave2D.DefaultConfig()
			cfg.CFL, _ = cmd.Flags().GetFloat64("cfl")
			cfg.Mx, _ = cmd.Flags().GetInt("mx")
			cfg.My, _ = cmd.Flags().GetInt("my")
			bcName, _ := cmd.Flags().GetString("bc")
			var err error
			if cfg.BC, err = FD2D.ParseBCType(bcName); err != nil {
				return err
			}
			rf := Wave2D.NewRefinement(cfg)
			rf.BaseN = N0
			rf.BaseNt, _ = cmd.Flags().GetInt("nt")
			s = rf
		case "poisson":
			ue, f := Poisson2D.ExpCosSin()
			s = Poisson2D.Refinement{Problem: Poisson2D.NewPoisson2D(1, ue, f)}
		default:
			return fmt.Errorf("unknown problem %q, want wave or poisson", problem)
		}
		r, E, h, err := FD2D.ConvergenceRates(s, m, N0)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %-14s %-10s\n", "h", "l2_error", "order")
		for i := range h {
			if i == 0 {
				fmt.Printf("%-12.6f %-14.4e %-10s\n", h[i], E[i], "-")
				continue
			}
			fmt.Printf("%-12.6f %-14.4e %-10.4f\n", h[i], E[i], r[i-1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convergenceCmd)
	def := Wave2D.DefaultConfig()
	convergenceCmd.Flags().String("problem", "wave", "problem to refine: wave or poisson")
	convergenceCmd.Flags().IntP("m", "m", 4, "number of refinement levels")
	convergenceCmd.Flags().Int("n0", 8, "coarsest resolution")
	convergenceCmd.Flags().Int("nt", 10, "time steps at the coarsest level (wave)")
	convergenceCmd.Flags().String("bc", def.BC.String(), "boundary condition (wave)")
	convergenceCmd.Flags().Float64("cfl", 0.1, "CFL number (wave)")
	convergenceCmd.Flags().Int("mx", def.Mx, "standing wave mode number in x (wave)")
	convergenceCmd.Flags().Int("my", def.My, "standing wave mode number in y (wave)")
	convergenceCmd.Flags().Bool("profile", false, "write a CPU profile of the sweep")
}
