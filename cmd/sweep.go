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
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/spectralmech/spectelast/InputParameters"
	"github.com/spectralmech/spectelast/elasticity"
)

// Sweep holds the common flags of the solver commands: the basis order range
// to run and where diagnostics go.
type Sweep struct {
	ICFile    string
	NMin      int
	NMax      int
	NStep     int
	OutputDir string
	Profile   bool
	Perf      bool
}

func readSweepFlags(cmd *cobra.Command) (sw *Sweep) {
	var (
		err error
	)
	sw = &Sweep{}
	if sw.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		panic(err)
	}
	sw.NMin, _ = cmd.Flags().GetInt("nMin")
	sw.NMax, _ = cmd.Flags().GetInt("nMax")
	sw.NStep, _ = cmd.Flags().GetInt("nStep")
	sw.OutputDir, _ = cmd.Flags().GetString("outputDir")
	sw.Profile, _ = cmd.Flags().GetBool("profile")
	sw.Perf, _ = cmd.Flags().GetBool("perf")
	return
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the problem; omit to run the built-in tension strip")
	cmd.Flags().Int("nMin", 10, "smallest basis order of the sweep")
	cmd.Flags().Int("nMax", 30, "largest basis order of the sweep")
	cmd.Flags().Int("nStep", 5, "basis order increment")
	cmd.Flags().StringP("outputDir", "o", ".", "directory for the diagnostic .dat files")
	cmd.Flags().Bool("profile", false, "write a CPU profile of the sweep")
	cmd.Flags().Bool("perf", false, "count hardware CPU cycles per solve (linux only)")
}

func processInput(sw *Sweep) (ip *InputParameters.InputParameters2D) {
	var (
		err error
	)
	if len(sw.ICFile) == 0 {
		return
	}
	var data []byte
	if data, err = ioutil.ReadFile(sw.ICFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	ip = &InputParameters.InputParameters2D{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

// problemSetup carries one fully specified elasticity problem.
type problemSetup struct {
	dom  elasticity.Domain
	bcs  elasticity.BoundaryConditions
	f    elasticity.BodyForce
	lame elasticity.CauchyMaterial
	grad elasticity.GradientMaterial
	opts elasticity.Options
}

// setupProblem converts the parsed input, falling back to the built-in
// uniaxial tension strip when no input file was given.
func setupProblem(sw *Sweep, ip *InputParameters.InputParameters2D) (ps problemSetup) {
	ps.opts = elasticity.Options{
		MeasureTime:  true,
		ComputeError: true,
		Sink:         elasticity.NewDiagSink(sw.OutputDir),
	}
	if ip == nil {
		p := elasticity.DefaultUniaxialTension()
		ua := p.Analytical()
		ps.dom = p.Domain()
		ps.bcs = p.BoundaryConditions()
		ps.f = p.BodyForce()
		ps.lame = p.Material()
		ps.grad = elasticity.GradientMaterial{Lambda: ps.lame.Lambda, Mu: ps.lame.Mu}
		ps.opts.Scaling = p.Scaling()
		ps.opts.Analytical = &ua
		return
	}
	var err error
	ps.dom = ip.ProblemDomain()
	if ps.bcs, err = ip.BoundaryConditions(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	ps.f = ip.Force()
	ps.lame = ip.Lame()
	ps.grad = ip.GradientMaterial()
	ps.opts.Scaling = ip.ProblemScaling()
	return
}

// runSweep executes one solve per basis order and reports progress. The
// optional hardware cycle counter wraps the whole solve including assembly.
func runSweep(sw *Sweep, solve func(N int) (elasticity.Solution, error)) {
	for N := sw.NMin; N <= sw.NMax; N += sw.NStep {
		var (
			sol elasticity.Solution
			err error
		)
		if sw.Perf {
			var cycles uint64
			var perfErr error
			cycles, perfErr = cpuCycles(func() {
				sol, err = solve(N)
			})
			if perfErr != nil {
				fmt.Printf("perf: %s\n", perfErr.Error())
			} else {
				fmt.Printf("N=%3d: %d CPU cycles\n", N, cycles)
			}
		} else {
			sol, err = solve(N)
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("N=%3d solved, max |u| coefficient %8.5f\n", N, maxCoeff(sol))
	}
}

func maxCoeff(sol elasticity.Solution) (m float64) {
	for _, u := range sol.U {
		if c := u.MaxAbsCoeff(); c > m {
			m = c
		}
	}
	return
}
