package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file for a wave run
type WaveParameters struct {
	Title      string  `yaml:"Title"`
	BC         string  `yaml:"BC"` // "Dirichlet" or "Neumann"
	N          int     `yaml:"N"`
	Nt         int     `yaml:"Nt"`
	CFL        float64 `yaml:"CFL"`
	WaveSpeed  float64 `yaml:"WaveSpeed"`
	Mx         int     `yaml:"Mx"`
	My         int     `yaml:"My"`
	StoreEvery int     `yaml:"StoreEvery"`
}

func (ip *WaveParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *WaveParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= BC\n", ip.BC)
	fmt.Printf("%8d\t\t= N\n", ip.N)
	fmt.Printf("%8d\t\t= Nt\n", ip.Nt)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= WaveSpeed\n", ip.WaveSpeed)
	fmt.Printf("[%d,%d]\t\t\t= Mx,My\n", ip.Mx, ip.My)
}

// Parameters obtained from the YAML input file for a Poisson run
type PoissonParameters struct {
	Title string  `yaml:"Title"`
	N     int     `yaml:"N"`
	L     float64 `yaml:"L"`
}

func (ip *PoissonParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *PoissonParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8d\t\t= N\n", ip.N)
	fmt.Printf("%8.5f\t\t= L\n", ip.L)
}
