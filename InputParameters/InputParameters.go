package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/numgrid/polychaos/indexset"
	"github.com/numgrid/polychaos/orthopoly"
)

// ParameterDef is one uncertain input variable as read from the YAML
// problem file.
type ParameterDef struct {
	Type        string  `yaml:"Type"` // Uniform, Beta, Gaussian
	Lower       float64 `yaml:"Lower"`
	Upper       float64 `yaml:"Upper"`
	ShapeA      float64 `yaml:"ShapeA"` // Beta shape / Gaussian mean
	ShapeB      float64 `yaml:"ShapeB"` // Beta shape / Gaussian variance
	Order       int     `yaml:"Order"`
	Derivatives bool    `yaml:"Derivatives"`
}

// QueryGridDef requests surrogate evaluation on a regular 2-D grid,
// second coordinate varying fastest. Only valid for two-parameter
// problems.
type QueryGridDef struct {
	X1Min float64 `yaml:"X1Min"`
	X1Max float64 `yaml:"X1Max"`
	X2Min float64 `yaml:"X2Min"`
	X2Max float64 `yaml:"X2Max"`
	N1    int     `yaml:"N1"`
	N2    int     `yaml:"N2"`
}

// Parameters obtained from the YAML input file
type ApproxParameters struct {
	Title       string         `yaml:"Title"`
	Model       string         `yaml:"Model"`
	IndexSet    string         `yaml:"IndexSet"` // Tensor grid, Total order, Sparse grid
	Level       int            `yaml:"Level"`    // sparse grid level
	Growth      string         `yaml:"Growth"`   // Linear or Exponential
	Parameters  []ParameterDef `yaml:"Parameters"`
	QueryPoints [][]float64    `yaml:"QueryPoints"`
	QueryGrid   *QueryGridDef  `yaml:"QueryGrid,omitempty"`
}

func (ap *ApproxParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ap)
}

func (ap *ApproxParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ap.Title)
	fmt.Printf("[%s]\t\t\t= Model\n", ap.Model)
	fmt.Printf("[%s]\t\t= Index Set\n", ap.IndexSet)
	for i, pd := range ap.Parameters {
		fmt.Printf("Parameter[%d] = %s order %d on [%g, %g]\n",
			i, pd.Type, pd.Order, pd.Lower, pd.Upper)
	}
}

// Build realizes the parameter stack and the index set described by the
// input file.
func (ap *ApproxParameters) Build() (params []*orthopoly.Parameter, set *indexset.IndexSet, err error) {
	if len(ap.Parameters) == 0 {
		err = fmt.Errorf("input file declares no parameters")
		return
	}
	orders := make([]int, len(ap.Parameters))
	for i, pd := range ap.Parameters {
		var param *orthopoly.Parameter
		switch strings.ToLower(pd.Type) {
		case "uniform":
			param = orthopoly.NewUniform(pd.Lower, pd.Upper, pd.Order)
		case "beta":
			param = orthopoly.NewBeta(pd.ShapeA, pd.ShapeB, pd.Lower, pd.Upper, pd.Order)
		case "gaussian":
			param = orthopoly.NewGaussian(pd.ShapeA, pd.ShapeB, pd.Order)
		default:
			err = fmt.Errorf("unknown parameter type %q", pd.Type)
			return
		}
		param.DerivativeFlag = pd.Derivatives
		params = append(params, param)
		orders[i] = pd.Order - 1
	}

	switch strings.ToLower(ap.IndexSet) {
	case "", "tensor grid":
		set = indexset.NewTensorGrid(orders)
	case "total order":
		set = indexset.NewTotalOrder(orders)
	case "sparse grid":
		growth := indexset.LinearGrowth
		if strings.EqualFold(ap.Growth, "exponential") {
			growth = indexset.ExponentialGrowth
		}
		set = indexset.NewSparseGrid(ap.Level, len(params), growth)
	default:
		err = fmt.Errorf("unknown index set kind %q", ap.IndexSet)
	}
	return
}
