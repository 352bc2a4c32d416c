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

	"github.com/spectralmech/spectelast/elasticity"
)

// CauchyCmd represents the cauchy command
var CauchyCmd = &cobra.Command{
	Use:   "cauchy",
	Short: "Classical linear elasticity solver over a range of basis orders",
	Long: `
Runs the spectral Galerkin solver for the Cauchy continuum over a range of
basis orders, logging wall time, the Lame-Navier residual and, when available,
the distance to the analytical solution,

spectelast cauchy `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cauchy called")
		sw := readSweepFlags(cmd)
		ip := processInput(sw)
		RunCauchy(sw, setupProblem(sw, ip))
	},
}

func init() {
	rootCmd.AddCommand(CauchyCmd)
	addSweepFlags(CauchyCmd)
}

func RunCauchy(sw *Sweep, ps problemSetup) {
	if sw.Profile {
		defer profile.Start().Stop()
	}
	runSweep(sw, func(N int) (elasticity.Solution, error) {
		return elasticity.SolveCauchy(N, ps.dom, ps.bcs, ps.f, ps.lame, ps.opts)
	})
}
