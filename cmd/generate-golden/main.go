package main

import (
	"encoding/json"
	"flag"
	stdlog "log"
	"math/big"
	"math/bits"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agbru/fibmod/internal/logging"
)

// GoldenData is one entry of the golden file: F(N) mod Modulus = Result.
type GoldenData struct {
	N       uint64 `json:"n"`
	Modulus uint64 `json:"modulus"`
	Result  uint64 `json:"result"`
}

const defaultModulus = 1_000_000_007

func main() {
	outputDir := flag.String("out", "internal/fibonacci/testdata", "Output directory for the golden file")
	jsonLogs := flag.Bool("json", false, "Write JSON log lines instead of plain text")
	verbose := flag.Bool("v", false, "Log every generated entry")
	flag.Parse()

	var logger logging.Logger = logging.NewStdLoggerAdapter(stdlog.New(os.Stderr, "", 0), *verbose)
	if *jsonLogs {
		level := zerolog.InfoLevel
		if *verbose {
			level = zerolog.DebugLevel
		}
		logger = logging.NewDefaultLogger(level)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		logger.Error("creating output directory", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "fibmod_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		logger.Error("creating output file", err)
		os.Exit(1)
	}
	defer file.Close()

	var data []GoldenData
	for _, n := range defaultTargets() {
		data = append(data, golden(logger, n, defaultModulus))
	}
	for _, c := range otherModulusTargets() {
		data = append(data, golden(logger, c[0], c[1]))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		logger.Error("encoding JSON", err)
		os.Exit(1)
	}

	logger.Info("golden file written", logging.Int("entries", len(data)), logging.String("path", filename))
}

// defaultTargets covers the base cases, the boundary of exact uint64
// Fibonacci values, the baselines' cancellation interval, and very large
// indices up to the uint64 maximum.
func defaultTargets() []uint64 {
	return []uint64{
		0, 1, 2, 3, 4, 5, 10, 20, 50, 92, 93, 94, 100,
		128, 256, 512, 1000, 1024, 2000, 2048, 5000, 8192, 10000,
		65535, 65536, 65537, 100000, 1000000,
		1_000_000_000, 1_000_000_000_000, 1_000_000_000_000_000, 1_000_000_000_000_000_000,
		1<<63 - 1, 1<<64 - 1,
	}
}

// otherModulusTargets exercises small, power-of-two and wide moduli.
func otherModulusTargets() [][2]uint64 {
	return [][2]uint64{
		{100, 10000},
		{1000, 1000000},
		{1_000_000_000_000_000_000, 1000},
		{1000, 1<<61 - 1},
		{1_000_000_000_000_000_000, 1<<61 - 1},
		{500, 1<<64 - 59},
		{1_000_000_000_000_000_000, 1<<64 - 59},
		{1<<64 - 1, 1<<64 - 59},
		{12345, 2},
		{1_000_000_000, 1 << 32},
		{1_000_000_000, 1<<32 + 15},
	}
}

func golden(logger logging.Logger, n, modulus uint64) GoldenData {
	res := fibModBig(n, new(big.Int).SetUint64(modulus))
	logger.Debug("generated", logging.Uint64("n", n), logging.Uint64("modulus", modulus))
	return GoldenData{N: n, Modulus: modulus, Result: res.Uint64()}
}

// fibModBig computes F(n) mod m by fast doubling on math/big integers,
// independently of the matrix formulation used by the calculators:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
func fibModBig(n uint64, m *big.Int) *big.Int {
	a := big.NewInt(0) // F(k)
	b := big.NewInt(1) // F(k+1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		t1.Lsh(b, 1)
		t1.Sub(t1, a)
		t1.Mul(t1, a)
		t1.Mod(t1, m)

		t2.Mul(a, a)
		a.Mul(b, b)
		t2.Add(t2, a)
		t2.Mod(t2, m)

		a.Set(t1)
		b.Set(t2)
		if (n>>uint(i))&1 == 1 {
			t1.Add(a, b)
			t1.Mod(t1, m)
			a.Set(b)
			b.Set(t1)
		}
	}
	return a.Mod(a, m)
}
