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

	"github.com/notargets/fdm2d/InputParameters"
	"github.com/notargets/fdm2d/model_problems/Poisson2D"
)

// poissonCmd represents the poisson command
var poissonCmd = &cobra.Command{
	Use:   "poisson",
	Short: "Direct solution of the 2D Poisson equation",
	Long: `
Assembles the Kronecker-sum Laplacian with Dirichlet boundary rows and solves
it directly for the built-in manufactured solution exp(cos(4*pi*x)*sin(2*pi*y)),

fdm2d poisson -n 64 -l 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			err error
		)
		ip := &InputParameters.PoissonParameters{}
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
			ip.L, _ = cmd.Flags().GetFloat64("l")
		}
		return runPoisson(ip.N, ip.L)
	},
}

func runPoisson(N int, L float64) (err error) {
	fmt.Printf("N = %d, L = %8.4f\n", N, L)
	var (
		ue, f = Poisson2D.ExpCosSin()
		p     = Poisson2D.NewPoisson2D(L, ue, f)
		sol   *Poisson2D.Solution
	)
	if sol, err = p.Solve(N); err != nil {
		return
	}
	fmt.Printf("l2_error = %10.3e\n", p.L2Error(sol))
	for _, pt := range [][2]float64{{0.52, 0.63}, {0.25, 0.75}} {
		var (
			val  float64
			x, y = L * pt[0], L * pt[1]
		)
		if val, err = sol.Eval(x, y); err != nil {
			return
		}
		fmt.Printf("u(%v,%v) = %10.6f, exact = %10.6f\n",
			x, y, val, ue(x, y))
	}
	return
}

func init() {
	rootCmd.AddCommand(poissonCmd)
	poissonCmd.Flags().IntP("n", "n", 64, "number of uniform mesh intervals per direction")
	poissonCmd.Flags().Float64P("l", "l", 1, "domain side length")
	poissonCmd.Flags().StringP("input", "i", "", "YAML parameter file overriding the flags")
}
