package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/spectralmech/spectelast/elasticity"
	"github.com/spectralmech/spectelast/spectral"
)

// BCInput is one boundary-condition entry of the YAML file. Kind is one of
// "free", "pair", "upper", "lower", "clamped"; Lo and Hi are constant
// prescribed displacement values at the interval ends.
type BCInput struct {
	Kind string  `yaml:"Kind"`
	Lo   float64 `yaml:"Lo"`
	Hi   float64 `yaml:"Hi"`
}

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title      string        `yaml:"Title"`
	Model      string        `yaml:"Model"` // "cauchy" or "gradient"
	Domain     [2][2]float64 `yaml:"Domain"`
	E          float64       `yaml:"E"`
	Nu         float64       `yaml:"Nu"`
	Lambda     float64       `yaml:"Lambda"`
	Mu         float64       `yaml:"Mu"`
	C          [5]float64    `yaml:"C"` // higher-order constants of the gradient model
	U0         float64       `yaml:"U0"`
	RefLength  float64       `yaml:"RefLength"`
	RefModulus float64       `yaml:"RefModulus"`
	NMin       int           `yaml:"NMin"`
	NMax       int           `yaml:"NMax"`
	NStep      int           `yaml:"NStep"`
	BCs        [2][2]BCInput `yaml:"BCs"` // first index is component, second is axis
	BodyForce  [2]float64    `yaml:"BodyForce"`
}

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Model\n", ip.Model)
	fmt.Printf("%v\t= Domain\n", ip.Domain)
	lm := ip.Lame()
	fmt.Printf("%8.5f\t= Lambda\n", lm.Lambda)
	fmt.Printf("%8.5f\t= Mu\n", lm.Mu)
	if ip.Model == "gradient" {
		fmt.Printf("%v\t= C\n", ip.C)
	}
	fmt.Printf("[%d:%d:%d]\t\t= N range\n", ip.NMin, ip.NMax, ip.NStep)
	for i := 0; i < 2; i++ {
		for a := 0; a < 2; a++ {
			fmt.Printf("BCs[%d][%d] = %+v\n", i, a, ip.BCs[i][a])
		}
	}
}

// Lame returns the Lame parameters, converting from engineering constants
// when E is given and no explicit Lambda/Mu pair is set.
func (ip *InputParameters2D) Lame() elasticity.CauchyMaterial {
	if ip.Lambda == 0 && ip.Mu == 0 && ip.E != 0 {
		return elasticity.CauchyFromYoung(ip.E, ip.Nu)
	}
	return elasticity.CauchyMaterial{Lambda: ip.Lambda, Mu: ip.Mu}
}

// GradientMaterial combines the Lame parameters with the higher-order
// constants.
func (ip *InputParameters2D) GradientMaterial() elasticity.GradientMaterial {
	lm := ip.Lame()
	return elasticity.GradientMaterial{
		Lambda: lm.Lambda,
		Mu:     lm.Mu,
		C1:     ip.C[0],
		C2:     ip.C[1],
		C3:     ip.C[2],
		C4:     ip.C[3],
		C5:     ip.C[4],
	}
}

// ProblemDomain converts the raw extents.
func (ip *InputParameters2D) ProblemDomain() elasticity.Domain {
	return elasticity.Domain(ip.Domain)
}

// BoundaryConditions converts the entry matrix. An unknown kind is an error.
func (ip *InputParameters2D) BoundaryConditions() (bcs elasticity.BoundaryConditions, err error) {
	for i := 0; i < 2; i++ {
		for a := 0; a < 2; a++ {
			e := ip.BCs[i][a]
			switch e.Kind {
			case "", "free":
				bcs[i][a] = elasticity.FreeBC()
			case "pair":
				bcs[i][a] = elasticity.DirichletPair(spectral.C(e.Lo), spectral.C(e.Hi))
			case "upper":
				bcs[i][a] = elasticity.UpperDirichlet(spectral.C(e.Hi))
			case "lower":
				bcs[i][a] = elasticity.LowerDirichlet(spectral.C(e.Lo))
			case "clamped":
				bcs[i][a] = elasticity.ClampedPair(spectral.C(e.Lo), spectral.C(e.Hi))
			default:
				err = fmt.Errorf("unknown BC kind %q for component %d axis %d", e.Kind, i, a)
				return
			}
		}
	}
	return
}

// Force converts the constant body-force components.
func (ip *InputParameters2D) Force() elasticity.BodyForce {
	return elasticity.BodyForce{
		spectral.C(ip.BodyForce[0]),
		spectral.C(ip.BodyForce[1]),
	}
}

// ProblemScaling returns the nondimensionalization references, defaulting to
// unit values for unset fields.
func (ip *InputParameters2D) ProblemScaling() elasticity.Scaling {
	s := elasticity.UnitScaling()
	if ip.U0 != 0 {
		s.Disp = ip.U0
	}
	if ip.RefLength != 0 {
		s.Length = ip.RefLength
	}
	if ip.RefModulus != 0 {
		s.Modulus = ip.RefModulus
	}
	return s
}
