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

	"github.com/numgrid/polychaos/InputParameters"
	"github.com/numgrid/polychaos/model_problems"
	"github.com/numgrid/polychaos/polynomial"
	"github.com/numgrid/polychaos/utils"
)

// ApproxCmd represents the approx command
var ApproxCmd = &cobra.Command{
	Use:   "approx",
	Short: "Compute a pseudospectral approximation from a YAML problem file",
	Long: `
Reads a YAML problem definition (parameters, index set, model), computes
the pseudospectral coefficients and prints the coefficient table. Query
points listed in the file are evaluated through the surrogate, as is an
optional regular 2-D query grid.

polychaos approx -i problem.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start().Stop()
		}
		if err := RunApprox(input); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ApproxCmd)
	ApproxCmd.Flags().StringP("input", "i", "", "YAML problem definition file")
	ApproxCmd.Flags().Bool("profile", false, "write a CPU profile for this run")
	_ = ApproxCmd.MarkFlagRequired("input")
}

func RunApprox(inputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("unable to read problem file: %w", err)
	}
	var ap InputParameters.ApproxParameters
	if err = ap.Parse(data); err != nil {
		return fmt.Errorf("unable to parse problem file: %w", err)
	}
	ap.Print()

	params, set, err := ap.Build()
	if err != nil {
		return err
	}
	f, err := model_problems.Get(ap.Model)
	if err != nil {
		return err
	}

	poly := polynomial.NewPolynomial(params, set)
	exp, err := poly.Coefficients(f)
	if err != nil {
		return err
	}

	fmt.Printf("%d basis terms, %d model evaluations\n",
		len(exp.Coefficients), rowCount(exp.Points))
	for j, c := range exp.Coefficients {
		fmt.Printf("%v\t% .12e\n", exp.Indices[j], c)
	}

	if len(ap.QueryPoints) != 0 {
		d := len(params)
		pts := utils.NewMatrix(len(ap.QueryPoints), d)
		for i, q := range ap.QueryPoints {
			if len(q) != d {
				return fmt.Errorf("query point %d has %d coordinates, want %d", i, len(q), d)
			}
			pts.SetRow(i, q)
		}
		vals, verr := poly.EvaluateExpansion(exp, pts)
		if verr != nil {
			return verr
		}
		for i, q := range ap.QueryPoints {
			fmt.Printf("f%v ≈ % .12e\n", q, vals.AtVec(i))
		}
	}

	if g := ap.QueryGrid; g != nil {
		if len(params) != 2 {
			return fmt.Errorf("QueryGrid needs a two-parameter problem, have %d parameters", len(params))
		}
		if g.N1 < 2 || g.N2 < 2 {
			return fmt.Errorf("QueryGrid needs at least 2 points per axis, have %dx%d", g.N1, g.N2)
		}
		pts := utils.MeshGrid(g.X1Min, g.X1Max, g.X2Min, g.X2Max, g.N1, g.N2)
		vals, verr := poly.EvaluateExpansion(exp, pts)
		if verr != nil {
			return verr
		}
		fmt.Printf("%dx%d query grid on [%g, %g] x [%g, %g]\n",
			g.N1, g.N2, g.X1Min, g.X1Max, g.X2Min, g.X2Max)
		for i := 0; i < g.N1*g.N2; i++ {
			fmt.Printf("f[% .6f % .6f] ≈ % .12e\n",
				pts.At(i, 0), pts.At(i, 1), vals.AtVec(i))
		}
	}
	return nil
}

func rowCount(M utils.Matrix) int {
	if M.IsEmpty() {
		return 0
	}
	nr, _ := M.Dims()
	return nr
}
