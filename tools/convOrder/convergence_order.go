package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
)

var (
	datFile string
)

func main() {
	datFilePtr := flag.String("datFile", datFile, "diagnostic file with one \"N error\" line per solve")
	flag.Parse()
	datFile = *datFilePtr
	if len(datFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", datFile)
	cs := readDat(datFile)
	cs.Print()
}

type ConvergenceStudy struct {
	N   []int
	err []float64
}

func (cs *ConvergenceStudy) Add(N int, e float64) {
	cs.N = append(cs.N, N)
	cs.err = append(cs.err, e)
}

// Print reports the per-step decay rate; for a spectral method the error of a
// smooth problem behaves like exp(-sigma N), so sigma is the figure of merit.
func (cs *ConvergenceStudy) Print() {
	for i := range cs.N {
		if i == 0 {
			fmt.Printf("%4d, %12.5e\n", cs.N[i], cs.err[i])
			continue
		}
		var (
			dN    = float64(cs.N[i] - cs.N[i-1])
			ratio = cs.err[i-1] / cs.err[i]
			sigma = math.Log(ratio) / dN
		)
		fmt.Printf("%4d, %12.5e, rate = %6.3f\n", cs.N[i], cs.err[i], sigma)
	}
}

func readDat(datFile string) (cs *ConvergenceStudy) {
	var (
		err error
		f   *os.File
		N   int
		e   float64
	)
	cs = &ConvergenceStudy{}
	if f, err = os.Open(datFile); err != nil {
		panic(err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if _, err = fmt.Sscanf(scanner.Text(), "%d %g", &N, &e); err != nil {
			continue
		}
		cs.Add(N, e)
	}
	return
}
