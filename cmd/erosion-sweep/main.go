package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"mapforge/internal/mapgen"
	"mapforge/internal/paths"

	"golang.org/x/sync/errgroup"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type paramSet struct {
	amount     float64
	iterations int
	seed       int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("erosion=%.3f iterations=%d seed=%d", p.amount, p.iterations, p.seed)
}

type scenarioResult struct {
	params      paramSet
	landFrac    float64
	rivers      int
	riverLength float64
	coastLength float64
	cities      int
	elapsed     time.Duration
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	seeds := flag.Int("seeds", 3, "seeds per parameter set, counting up from the base seed")
	top := flag.Int("top", 5, "number of results to print")
	var overrides kvList
	flag.Var(&overrides, "set", "base config override in key=value form (repeatable)")
	flag.Parse()

	kv := map[string]string{"w": "96", "h": "96"}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			slog.Warn("ignoring malformed override", "value", o)
			continue
		}
		kv[parts[0]] = parts[1]
	}
	baseCfg := mapgen.FromMap(kv)
	if err := baseCfg.Validate(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	amountOptions := []float64{0, 0.02, 0.05, 0.1}
	iterationOptions := []int{1, 3, 5, 10}

	var sets []paramSet
	for _, amount := range amountOptions {
		for _, iters := range iterationOptions {
			for s := 0; s < *seeds; s++ {
				sets = append(sets, paramSet{amount: amount, iterations: iters, seed: baseCfg.Seed + int64(s)})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers)\n", len(sets), baseCfg.Width, baseCfg.Height, *workers)

	results := make([]scenarioResult, len(sets))
	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for i, params := range sets {
		g.Go(func() error {
			res, err := runScenario(baseCfg, params)
			if err != nil {
				return fmt.Errorf("%s: %w", params, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool { return results[i].riverLength > results[j].riverLength })

	fmt.Printf("\nTop %d by river length (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) rivers=%d length=%.1f coast=%.1f land=%.2f cities=%d took=%s params=%s\n",
			i+1, res.rivers, res.riverLength, res.coastLength, res.landFrac, res.cities, res.elapsed.Round(time.Millisecond), res.params)
	}

	fmt.Println("\nMean per erosion setting:")
	for _, amount := range amountOptions {
		for _, iters := range iterationOptions {
			var n, rivers int
			var length float64
			for _, res := range results {
				if res.params.amount == amount && res.params.iterations == iters {
					n++
					rivers += res.rivers
					length += res.riverLength
				}
			}
			if n == 0 {
				continue
			}
			fmt.Printf("  erosion=%-5s iterations=%-2d rivers=%.1f length=%.1f\n",
				strconv.FormatFloat(amount, 'f', -1, 64), iters, float64(rivers)/float64(n), length/float64(n))
		}
	}
}

func runScenario(base mapgen.Config, params paramSet) (scenarioResult, error) {
	cfg := base
	cfg.ErosionAmount = params.amount
	cfg.ErosionIterations = params.iterations
	cfg.Seed = params.seed

	start := time.Now()
	m, err := mapgen.Generate(cfg, slog.Default())
	if err != nil {
		return scenarioResult{}, err
	}
	return scenarioResult{
		params:      params,
		landFrac:    float64(m.Heights.LandCount()) / float64(m.Heights.Len()),
		rivers:      len(m.Rivers),
		riverLength: totalLength(m.Rivers),
		coastLength: totalLength(m.Coasts),
		cities:      len(m.Cities),
		elapsed:     time.Since(start),
	}, nil
}

func totalLength(ps []paths.Path) float64 {
	total := 0.0
	for _, p := range ps {
		total += p.Length()
	}
	return total
}
