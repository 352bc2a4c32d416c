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

// GradientCmd represents the gradient command
var GradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Strain-gradient elasticity solver over a range of basis orders",
	Long: `
Runs the spectral Galerkin solver for the second-gradient continuum with five
higher-order material constants, logging wall time and the balance of linear
momentum residual per basis order,

spectelast gradient `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gradient called")
		sw := readSweepFlags(cmd)
		ip := processInput(sw)
		RunGradient(sw, setupProblem(sw, ip))
	},
}

func init() {
	rootCmd.AddCommand(GradientCmd)
	addSweepFlags(GradientCmd)
}

func RunGradient(sw *Sweep, ps problemSetup) {
	if sw.Profile {
		defer profile.Start().Stop()
	}
	runSweep(sw, func(N int) (elasticity.Solution, error) {
		return elasticity.SolveGradient(N, ps.dom, ps.bcs, ps.f, ps.grad, ps.opts)
	})
}
