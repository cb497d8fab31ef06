package primerforge

import "math"

// Nearest-neighbor thermodynamic parameters, SantaLucia (1998) "A unified
// view of polymer, dumbbell, and oligonucleotide DNA nearest-neighbor
// thermodynamics", PNAS 95:1460-1465, unified parameter set. Values are
// ΔH in kcal/mol and ΔS in cal/(mol·K) for the 5'->3' dinucleotide step on
// the top strand; the table is centralized here exactly once (spec.md §9
// "Inherited Tm calculation ... constants must be centralized") so tests
// can assert exact values.
type nnParam struct {
	dH float64
	dS float64
}

var nnParams = map[string]nnParam{
	"AA": {-7.9, -22.2}, "TT": {-7.9, -22.2},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7}, "TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4}, "AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0}, "AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2}, "TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9}, "CC": {-8.0, -19.9},
}

// Initiation terms, keyed by the identity of each terminal base pair.
var (
	initGC = nnParam{0.1, -2.8}
	initAT = nnParam{2.3, 4.1}
)

const (
	gasConstant = 1.987 // cal/(mol*K)

	// defaultSaltMolar is the fixed Na+ concentration (50 mM), spec.md §6.
	defaultSaltMolar = 0.050
	// defaultPrimerMolar is the fixed primer strand concentration (250 nM),
	// spec.md §6.
	defaultPrimerMolar = 250e-9

	kelvinOffset = 273.15
)

func initiationTerm(base byte) nnParam {
	switch base {
	case 'G', 'C', 'g', 'c':
		return initGC
	default:
		return initAT
	}
}

// MeltingTemp computes the nearest-neighbor melting temperature of seq in
// degrees Celsius, using the SantaLucia '98 unified parameters, the fixed
// salt/strand concentrations listed in spec.md §6, and the standard
// log-salt correction term (spec.md §4.1). The result is deterministic
// given the sequence.
func MeltingTemp(seq []byte) float64 {
	return meltingTempWithConc(seq, defaultSaltMolar, defaultPrimerMolar)
}

func meltingTempWithConc(seq []byte, naMolar, primerMolar float64) float64 {
	if len(seq) < 2 {
		return 0
	}

	dH, dS := 0.0, 0.0

	init5 := initiationTerm(seq[0])
	init3 := initiationTerm(seq[len(seq)-1])
	dH += init5.dH + init3.dH
	dS += init5.dS + init3.dS

	for i := 0; i+1 < len(seq); i++ {
		step := string(seq[i : i+2])
		p, ok := nnParams[step]
		if !ok {
			// Non-ACGT byte pairs (ambiguous IUPAC input, spec.md §1
			// Non-goals): treat as a neutral AT-like step rather than
			// crashing.
			p = nnParam{-7.2, -20.4}
		}
		dH += p.dH
		dS += p.dS
	}

	// Salt correction (SantaLucia 1998): one correction per phosphate,
	// i.e. len(seq)-1 of them.
	dSSalt := dS + 0.368*float64(len(seq)-1)*math.Log(naMolar)

	// Non-self-complementary duplex of two distinct, equal-concentration
	// strands: Ct/4 in the denominator.
	ct := primerMolar / 4

	tmKelvin := (dH * 1000) / (dSSalt + gasConstant*math.Log(ct))
	return tmKelvin - kelvinOffset
}
