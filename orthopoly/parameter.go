package orthopoly

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/numgrid/polychaos/utils"
)

type DistributionKind uint8

const (
	Uniform DistributionKind = iota
	Beta
	Gaussian
)

func (k DistributionKind) String() string {
	switch k {
	case Uniform:
		return "Uniform"
	case Beta:
		return "Beta"
	case Gaussian:
		return "Gaussian"
	}
	return fmt.Sprintf("DistributionKind(%d)", uint8(k))
}

// Parameter is a univariate random variable with an associated orthonormal
// polynomial family. Uniform uses Legendre on the canonical domain [-1,1],
// Beta uses shifted Jacobi on [0,1], Gaussian uses probabilists' Hermite
// with nodes reported directly in physical coordinates.
type Parameter struct {
	Kind           DistributionKind
	Lower, Upper   float64 // physical bounds, bounded kinds only
	ShapeA, ShapeB float64 // Beta shapes; Gaussian reuses A,B as mean,variance
	Order          int     // quadrature points / polynomial degree + 1
	DerivativeFlag bool
}

func NewUniform(lower, upper float64, order int) *Parameter {
	return &Parameter{Kind: Uniform, Lower: lower, Upper: upper, Order: order}
}

func NewBeta(shapeA, shapeB, lower, upper float64, order int) *Parameter {
	return &Parameter{
		Kind: Beta, Lower: lower, Upper: upper,
		ShapeA: shapeA, ShapeB: shapeB, Order: order,
	}
}

func NewGaussian(mean, variance float64, order int) *Parameter {
	return &Parameter{Kind: Gaussian, ShapeA: mean, ShapeB: variance, Order: order}
}

// GaussQuadrature computes the n point Gauss rule for the parameter's
// measure from the eigen-decomposition of the symmetric tridiagonal Jacobi
// matrix. Nodes come back on the canonical domain for bounded kinds and in
// physical coordinates for Gaussian; weights sum to 1.
func (p *Parameter) GaussQuadrature(n int) (X, W utils.Vector, err error) {
	if n <= 0 {
		err = fmt.Errorf("quadrature rule needs at least one point, got order %d for %v parameter", n, p.Kind)
		return
	}
	a, b, err := p.recurrenceCoefficients(n)
	if err != nil {
		return
	}
	if n == 1 {
		X = utils.NewVector(1, []float64{p.nodeShift(a[0])})
		W = utils.NewVector(1, []float64{1})
		return
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(jacobiMatrix(a, b), true); !ok {
		err = fmt.Errorf("eigenvalue decomposition failed for %v parameter at order %d", p.Kind, n)
		return
	}
	x := eig.Values(nil)
	VVr := mat.NewDense(n, n, nil)
	eig.VectorsTo(VVr)
	for i := range x {
		x[i] = p.nodeShift(x[i])
	}
	X = utils.NewVector(n, x)
	W = utils.NewVector(n, VVr.RawRowView(0)).POW(2)
	return
}

// JacobiEigenvectors returns the n-by-n eigenvector matrix of the Jacobi
// matrix, columns ordered by ascending node. It is the change of basis
// behind the pseudospectral transform.
func (p *Parameter) JacobiEigenvectors(n int) (Q utils.Matrix, err error) {
	if n <= 0 {
		err = fmt.Errorf("eigenvector matrix needs order >= 1, got %d for %v parameter", n, p.Kind)
		return
	}
	a, b, err := p.recurrenceCoefficients(n)
	if err != nil {
		return
	}
	if n == 1 {
		Q = utils.NewMatrix(1, 1, []float64{1})
		return
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(jacobiMatrix(a, b), true); !ok {
		err = fmt.Errorf("eigenvalue decomposition failed for %v parameter at order %d", p.Kind, n)
		return
	}
	Q = utils.NewMatrix(n, n)
	eig.VectorsTo(Q.M)
	return
}

// OrthonormalPolynomials evaluates the family up to maxDegree at the given
// physical points. P and D are (maxDegree+1)-by-m matrices of values and
// first derivatives; row k holds degree k. Orthonormality holds under the
// parameter's probability measure and its Gauss rules.
func (p *Parameter) OrthonormalPolynomials(points utils.Vector, maxDegree int) (P, D utils.Matrix, err error) {
	var (
		m = points.Len()
	)
	if maxDegree < 0 {
		err = fmt.Errorf("negative max degree %d", maxDegree)
		return
	}
	a, b, err := p.recurrenceCoefficients(maxDegree + 1)
	if err != nil {
		return
	}
	sb := make([]float64, len(b))
	for i, val := range b {
		sb[i] = math.Sqrt(val)
	}
	xi := make([]float64, m)
	for i := 0; i < m; i++ {
		xi[i] = p.canonical(points.AtVec(i))
	}
	scale := p.chainRule()

	P = utils.NewMatrix(maxDegree+1, m)
	D = utils.NewMatrix(maxDegree+1, m)
	P.SetRow(0, utils.ConstArray(m, 1))
	if maxDegree == 0 {
		return
	}
	p1 := make([]float64, m)
	d1 := make([]float64, m)
	for i := 0; i < m; i++ {
		p1[i] = (xi[i] - a[0]) / sb[1]
		d1[i] = scale / sb[1]
	}
	P.SetRow(1, p1)
	D.SetRow(1, d1)
	for k := 1; k < maxDegree; k++ {
		var (
			pkm1 = P.M.RawRowView(k - 1)
			pk   = P.M.RawRowView(k)
			dkm1 = D.M.RawRowView(k - 1)
			dk   = D.M.RawRowView(k)
			pnew = make([]float64, m)
			dnew = make([]float64, m)
		)
		for i := 0; i < m; i++ {
			pnew[i] = ((xi[i]-a[k])*pk[i] - sb[k]*pkm1[i]) / sb[k+1]
			dnew[i] = ((xi[i]-a[k])*dk[i] + scale*pk[i] - sb[k]*dkm1[i]) / sb[k+1]
		}
		P.SetRow(k+1, pnew)
		D.SetRow(k+1, dnew)
	}
	return
}

// canonical maps a physical coordinate onto the recurrence domain.
func (p *Parameter) canonical(x float64) float64 {
	switch p.Kind {
	case Uniform:
		return 2*(x-p.Lower)/(p.Upper-p.Lower) - 1
	case Beta:
		return (x - p.Lower) / (p.Upper - p.Lower)
	case Gaussian:
		return (x - p.ShapeA) / math.Sqrt(p.ShapeB)
	}
	return x
}

// chainRule is d(canonical)/d(physical), applied to derivative rows.
func (p *Parameter) chainRule() float64 {
	switch p.Kind {
	case Uniform:
		return 2 / (p.Upper - p.Lower)
	case Beta:
		return 1 / (p.Upper - p.Lower)
	case Gaussian:
		return 1 / math.Sqrt(p.ShapeB)
	}
	return 1
}

// nodeShift places a canonical Jacobi matrix eigenvalue where the
// quadrature contract wants it: bounded kinds stay canonical (the tensor
// assembler rescales them), Gaussian nodes go physical immediately.
func (p *Parameter) nodeShift(x float64) float64 {
	if p.Kind == Gaussian {
		return p.ShapeA + math.Sqrt(p.ShapeB)*x
	}
	return x
}
