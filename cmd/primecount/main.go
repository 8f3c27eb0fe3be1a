package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jedisct1/dlog"
	"gonum.org/v1/gonum/stat"

	"github.com/TomTonic/primecount"
)

/*
Count the primes <= x.

Example calls:

# pi(10^12) with all cores and progress reporting
go run . -x 1e12 -progress

# compare two algorithms
go run . -x 1e10 -algo lmo
go run . -x 1e10 -algo gourdon

# repeat-timing mode: run 5 times, report mean and stddev
go run . -x 1e11 -time 5
*/

// config mirrors the optional TOML file. Flags win over file values.
type config struct {
	Threads  int     `toml:"threads"`
	Alpha    float64 `toml:"alpha"`
	Progress bool    `toml:"progress"`
}

// parseX accepts plain integers and the scientific shorthand 1e12.
func parseX(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse %q as a number: %w", s, err)
	}
	if f < 0 || f > math.MaxInt64 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a non-negative integer", s)
	}
	return int64(f), nil
}

func main() {
	xStr := flag.String("x", "", "count the primes <= x (accepts 1e12 notation) [required]")
	algoStr := flag.String("algo", "auto", "algorithm: auto | legendre | meissel | lehmer | lmo | deleglise_rivat1 | deleglise_rivat | deleglise_rivat_wide | gourdon")
	threads := flag.Int("threads", 0, "worker threads (0 = all hardware threads)")
	alpha := flag.Float64("alpha", 0, "override the alpha tuning factor (0 = auto)")
	progress := flag.Bool("progress", false, "print progress lines to standard error")
	configFile := flag.String("config", "", "optional TOML config file")
	repeat := flag.Int("time", 0, "run N times and report mean/stddev timings")
	verbose := flag.Bool("v", false, "debug logging")

	flag.Parse()

	dlog.Init("primecount", dlog.SeverityNotice, "")
	if *verbose {
		dlog.SetLogLevel(dlog.SeverityDebug)
	}

	var cfg config
	if *configFile != "" {
		if _, err := toml.DecodeFile(*configFile, &cfg); err != nil {
			dlog.Fatalf("config file: %v", err)
		}
	}
	if !flagPassed("threads") && cfg.Threads != 0 {
		*threads = cfg.Threads
	}
	if !flagPassed("alpha") && cfg.Alpha != 0 {
		*alpha = cfg.Alpha
	}
	if !flagPassed("progress") {
		*progress = cfg.Progress
	}

	if *xStr == "" {
		log.Fatal("please provide -x (e.g. -x 1e12)")
	}
	x, err := parseX(*xStr)
	if err != nil {
		log.Fatal(err)
	}
	algo, err := primecount.ParseAlgorithm(*algoStr)
	if err != nil {
		log.Fatal(err)
	}

	if *alpha > 0 {
		primecount.SetAlpha(*alpha)
	}
	primecount.SetPrint(*progress)

	if *repeat > 0 {
		runTimed(x, algo, *threads, *repeat)
		return
	}

	start := time.Now()
	result, err := primecount.PiAlgo(x, algo, *threads)
	if err != nil {
		dlog.Fatal(err)
	}
	dlog.Debugf("pi(%d) took %s", x, time.Since(start).Round(time.Millisecond))
	fmt.Println(result)
}

// runTimed repeats the computation and reports mean and standard
// deviation of the wall times.
func runTimed(x int64, algo primecount.Algorithm, threads, n int) {
	times := make([]float64, 0, n)
	var result int64
	for i := 0; i < n; i++ {
		start := time.Now()
		r, err := primecount.PiAlgo(x, algo, threads)
		if err != nil {
			dlog.Fatal(err)
		}
		if i > 0 && r != result {
			dlog.Fatalf("non-deterministic result: %d != %d", r, result)
		}
		result = r
		times = append(times, time.Since(start).Seconds())
	}
	mean, std := stat.MeanStdDev(times, nil)
	fmt.Printf("pi(%d)  : %d\n", x, result)
	fmt.Printf("runs    : %d\n", n)
	fmt.Printf("mean    : %.4fs\n", mean)
	fmt.Printf("stddev  : %.4fs\n", std)
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}
