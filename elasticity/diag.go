package elasticity

import (
	"fmt"
	"os"
	"path/filepath"
)

// Diagnostic log file names, one line per discretization order.
const (
	TimeLog             = "N_time.dat"
	CauchyResidualLog   = "N_errorLameNavier.dat"
	GradientResidualLog = "N_errorBalanceLinMom.dat"
	AnalyticalErrorLog  = "N_error_u_ana.dat"
)

// DiagSink is an explicit output destination for append-only diagnostic
// records. A nil sink discards everything.
type DiagSink struct {
	Dir string
}

func NewDiagSink(dir string) *DiagSink {
	return &DiagSink{Dir: dir}
}

// Append writes one "<N> <value>" line to the named log.
func (s *DiagSink) Append(name string, N int, val float64) (err error) {
	if s == nil {
		return
	}
	var f *os.File
	path := filepath.Join(s.Dir, name)
	if f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%d %v\n", N, val)
	return
}
