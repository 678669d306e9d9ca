package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/segcolor/external"
	"github.com/katalvlaran/segcolor/genetic"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/localsearch"
	"github.com/katalvlaran/segcolor/recursive"
	"github.com/katalvlaran/segcolor/repair"
	"github.com/katalvlaran/segcolor/tabu"
)

// Engine names accepted by run.engine.
const (
	EngineGreedy    = "greedy"
	EngineRepair    = "repair"
	EngineSearch    = "search"
	EngineRecursive = "recursive"
	EngineGenetic   = "genetic"
	EngineHead      = "head"
	EngineTabu      = "tabu"
	EngineSave      = "save"
	EngineTable     = "table"
)

// Engines lists every engine name in the order the CLI documents them.
var Engines = []string{
	EngineGreedy, EngineRepair, EngineSearch, EngineRecursive, EngineGenetic,
	EngineHead, EngineTabu, EngineSave, EngineTable,
}

// DefaultSolutions is the directory holding best-known solutions.
const DefaultSolutions = "temp"

// Config is the full settings document.
type Config struct {
	Run         RunConfig         `yaml:"run"`
	Repair      RepairConfig      `yaml:"repair"`
	LocalSearch LocalSearchConfig `yaml:"local_search"`
	Tabu        TabuConfig        `yaml:"tabu"`
	Genetic     GeneticConfig     `yaml:"genetic"`
	Recursive   RecursiveConfig   `yaml:"recursive"`
	External    ExternalConfig    `yaml:"external"`
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// RunConfig drives the batch runner.
type RunConfig struct {
	Engine    string        `yaml:"engine"`
	Threads   int           `yaml:"threads"`
	Solutions string        `yaml:"solutions"`
	SaveFrom  string        `yaml:"save_from"`
	TimeLimit time.Duration `yaml:"time_limit"`
	// Iterations caps engine iterations (rounds for head). 0 means unbounded.
	Iterations int    `yaml:"iterations"`
	Seed       int64  `yaml:"seed"`
	Scratch    bool   `yaml:"scratch"`
	DIMACS     bool   `yaml:"dimacs"`
	Crossing   string `yaml:"crossing"`
}

// RepairConfig mirrors repair.Options.
type RepairConfig struct {
	Policy        string  `yaml:"policy"`
	Target        string  `yaml:"target"`
	StartMode     string  `yaml:"start_mode"`
	Alternate     bool    `yaml:"alternate"`
	SwitchIters   int     `yaml:"switch_iters"`
	ScorePhase    int     `yaml:"score_phase"`
	CountPhase    int     `yaml:"count_phase"`
	StuckLimit    int64   `yaml:"stuck_limit"`
	Tolerance     float64 `yaml:"tolerance"`
	ScoreBase     int64   `yaml:"score_base"`
	SeedByDegree  bool    `yaml:"seed_stuck_with_degree"`
	ShuffleNewBad bool    `yaml:"shuffle_new_bad"`
	CheckEvery    int     `yaml:"check_every"`
	ProgressEvery int     `yaml:"progress_every"`
}

// LocalSearchConfig mirrors localsearch.Options.
type LocalSearchConfig struct {
	Badify        int `yaml:"badify"`
	StallLimit    int `yaml:"stall_limit"`
	ProgressEvery int `yaml:"progress_every"`
}

// TabuConfig mirrors tabu.Options.
type TabuConfig struct {
	TenureFactor  float64 `yaml:"tenure_factor"`
	JitterMax     int     `yaml:"jitter_max"`
	StaleDivisor  int     `yaml:"stale_divisor"`
	RoundIters    int     `yaml:"round_iters"`
	ProgressEvery int     `yaml:"progress_every"`
}

// GeneticConfig mirrors genetic.Options.
type GeneticConfig struct {
	PopSize           int           `yaml:"pop_size"`
	Parents           int           `yaml:"parents"`
	SeedRepairTime    time.Duration `yaml:"seed_repair_time"`
	TabuIters         int           `yaml:"tabu_iters"`
	SimilarityDivisor int           `yaml:"similarity_divisor"`
}

// RecursiveConfig mirrors recursive.Options.
type RecursiveConfig struct {
	LeafSize         int           `yaml:"leaf_size"`
	Trials           int           `yaml:"trials"`
	CoordRange       int64         `yaml:"coord_range"`
	LeafRepair       time.Duration `yaml:"leaf_repair"`
	LeafRepairTiny   time.Duration `yaml:"leaf_repair_tiny"`
	MergeRepair      time.Duration `yaml:"merge_repair"`
	MergeRepairSmall time.Duration `yaml:"merge_repair_small"`
}

// ExternalConfig mirrors external.Options and the SAT backend timeout.
type ExternalConfig struct {
	MaxItems  int           `yaml:"max_items"`
	RoundTime time.Duration `yaml:"round_time"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the reference settings.
func Default() Config {
	r := repair.DefaultOptions()
	ls := localsearch.DefaultOptions()
	tb := tabu.DefaultOptions()
	ga := genetic.DefaultOptions()
	rc := recursive.DefaultOptions()
	ex := external.DefaultOptions()

	return Config{
		Run: RunConfig{
			Engine:    EngineGreedy,
			Threads:   1,
			Solutions: DefaultSolutions,
			Seed:      randx.DefaultSeed,
			Crossing:  instance.Exact.String(),
		},
		Repair: RepairConfig{
			Policy:        "random",
			Target:        "smallest",
			StartMode:     r.StartMode.String(),
			Alternate:     r.Alternate,
			SwitchIters:   r.SwitchIters,
			ScorePhase:    r.ScorePhase,
			CountPhase:    r.CountPhase,
			StuckLimit:    r.StuckLimit,
			Tolerance:     r.Tolerance,
			ScoreBase:     r.ScoreBase,
			SeedByDegree:  r.SeedStuckWithDegree,
			ShuffleNewBad: r.ShuffleNewBad,
			CheckEvery:    r.CheckEvery,
			ProgressEvery: r.ProgressEvery,
		},
		LocalSearch: LocalSearchConfig{
			Badify:        ls.Badify,
			StallLimit:    ls.StallLimit,
			ProgressEvery: ls.ProgressEvery,
		},
		Tabu: TabuConfig{
			TenureFactor:  tb.TenureFactor,
			JitterMax:     tb.JitterMax,
			StaleDivisor:  tb.StaleDivisor,
			RoundIters:    tb.RoundIters,
			ProgressEvery: tb.ProgressEvery,
		},
		Genetic: GeneticConfig{
			PopSize:           ga.PopSize,
			Parents:           ga.Parents,
			SeedRepairTime:    ga.SeedRepairTime,
			TabuIters:         ga.TabuIters,
			SimilarityDivisor: ga.SimilarityDivisor,
		},
		Recursive: RecursiveConfig{
			LeafSize:         rc.LeafSize,
			Trials:           rc.Trials,
			CoordRange:       rc.CoordRange,
			LeafRepair:       rc.LeafRepair,
			LeafRepairTiny:   rc.LeafRepairTiny,
			MergeRepair:      rc.MergeRepair,
			MergeRepairSmall: rc.MergeRepairSmall,
		},
		External: ExternalConfig{
			MaxItems:  ex.MaxItems,
			RoundTime: ex.RoundTime,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if err := cfg.Decode(bytes.NewReader(data)); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Decode overlays a YAML document onto c. Unknown keys are rejected. An
// empty document leaves c unchanged.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	return nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}

// Validate checks every range constraint and reports the first violation.
func (c Config) Validate() error {
	switch {
	case !slices.Contains(Engines, c.Run.Engine):
		return invalid("run.engine", c.Run.Engine)
	case c.Run.Threads < 1:
		return invalid("run.threads", c.Run.Threads)
	case c.Run.Solutions == "":
		return invalid("run.solutions", `""`)
	case c.Run.Engine == EngineSave && c.Run.SaveFrom == "":
		return invalid("run.save_from", `""`)
	case c.Run.TimeLimit < 0:
		return invalid("run.time_limit", c.Run.TimeLimit)
	case c.Run.Iterations < 0:
		return invalid("run.iterations", c.Run.Iterations)
	}
	if _, err := c.CrossingMethod(); err != nil {
		return err
	}
	if _, err := c.RepairOptions(); err != nil {
		return err
	}
	switch {
	case c.Repair.Tolerance < 1:
		return invalid("repair.tolerance", c.Repair.Tolerance)
	case c.Repair.StuckLimit < 1:
		return invalid("repair.stuck_limit", c.Repair.StuckLimit)
	case c.Repair.ScoreBase < 0:
		return invalid("repair.score_base", c.Repair.ScoreBase)
	case c.LocalSearch.Badify < 0:
		return invalid("local_search.badify", c.LocalSearch.Badify)
	case c.LocalSearch.StallLimit < 1:
		return invalid("local_search.stall_limit", c.LocalSearch.StallLimit)
	case c.Tabu.TenureFactor < 0:
		return invalid("tabu.tenure_factor", c.Tabu.TenureFactor)
	case c.Tabu.JitterMax < 1:
		return invalid("tabu.jitter_max", c.Tabu.JitterMax)
	case c.Tabu.StaleDivisor < 1:
		return invalid("tabu.stale_divisor", c.Tabu.StaleDivisor)
	case c.Genetic.PopSize < 2:
		return invalid("genetic.pop_size", c.Genetic.PopSize)
	case c.Genetic.Parents < 1 || c.Genetic.Parents > c.Genetic.PopSize:
		return invalid("genetic.parents", c.Genetic.Parents)
	case c.Genetic.SimilarityDivisor < 1:
		return invalid("genetic.similarity_divisor", c.Genetic.SimilarityDivisor)
	case c.Recursive.LeafSize < 1:
		return invalid("recursive.leaf_size", c.Recursive.LeafSize)
	case c.Recursive.Trials < 1:
		return invalid("recursive.trials", c.Recursive.Trials)
	case c.Recursive.CoordRange < 2:
		return invalid("recursive.coord_range", c.Recursive.CoordRange)
	case c.External.MaxItems < 1:
		return invalid("external.max_items", c.External.MaxItems)
	case c.External.RoundTime <= 0:
		return invalid("external.round_time", c.External.RoundTime)
	case !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)):
		return invalid("log.level", c.Log.Level)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return invalid("log.format", c.Log.Format)
	}

	return nil
}

func invalid(key string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, key, v)
}

// CrossingMethod resolves run.crossing.
func (c Config) CrossingMethod() (instance.CrossingMethod, error) {
	for _, m := range []instance.CrossingMethod{instance.Exact, instance.SweepAdjacent, instance.BruteForce} {
		if m.String() == c.Run.Crossing {
			return m, nil
		}
	}
	return 0, invalid("run.crossing", c.Run.Crossing)
}

// RepairOptions translates the repair section. The run time limit and
// iteration cap apply.
func (c Config) RepairOptions() (repair.Options, error) {
	s := c.Repair
	o := repair.Options{
		Alternate:           s.Alternate,
		SwitchIters:         s.SwitchIters,
		ScorePhase:          s.ScorePhase,
		CountPhase:          s.CountPhase,
		StuckLimit:          s.StuckLimit,
		Tolerance:           s.Tolerance,
		ScoreBase:           s.ScoreBase,
		SeedStuckWithDegree: s.SeedByDegree,
		ShuffleNewBad:       s.ShuffleNewBad,
		TimeLimit:           c.Run.TimeLimit,
		MaxIters:            c.Run.Iterations,
		CheckEvery:          s.CheckEvery,
		ProgressEvery:       s.ProgressEvery,
	}
	switch s.Policy {
	case "random":
		o.Policy = repair.RandomPick
	case "fifo":
		o.Policy = repair.FIFO
	default:
		return o, invalid("repair.policy", s.Policy)
	}
	switch s.Target {
	case "smallest":
		o.Target = repair.SmallestClass
	case "last":
		o.Target = repair.LastClass
	default:
		return o, invalid("repair.target", s.Target)
	}
	switch s.StartMode {
	case repair.CountMode.String():
		o.StartMode = repair.CountMode
	case repair.ScoreMode.String():
		o.StartMode = repair.ScoreMode
	default:
		return o, invalid("repair.start_mode", s.StartMode)
	}

	return o, nil
}

// LocalSearchOptions translates the local_search section.
func (c Config) LocalSearchOptions() localsearch.Options {
	o := localsearch.DefaultOptions()
	o.Badify = c.LocalSearch.Badify
	o.StallLimit = c.LocalSearch.StallLimit
	o.ProgressEvery = c.LocalSearch.ProgressEvery
	o.TimeLimit = c.Run.TimeLimit
	o.MaxIters = c.Run.Iterations

	return o
}

// TabuOptions translates the tabu section for the descent engine.
func (c Config) TabuOptions() tabu.Options {
	o := tabu.DefaultOptions()
	o.TenureFactor = c.Tabu.TenureFactor
	o.JitterMax = c.Tabu.JitterMax
	o.StaleDivisor = c.Tabu.StaleDivisor
	o.RoundIters = c.Tabu.RoundIters
	o.ProgressEvery = c.Tabu.ProgressEvery
	o.TimeLimit = c.Run.TimeLimit
	o.MaxIters = c.Run.Iterations

	return o
}

// GeneticOptions translates the genetic section. run.iterations caps
// generations.
func (c Config) GeneticOptions() genetic.Options {
	o := genetic.DefaultOptions()
	o.PopSize = c.Genetic.PopSize
	o.Parents = c.Genetic.Parents
	o.SeedRepairTime = c.Genetic.SeedRepairTime
	o.TabuIters = c.Genetic.TabuIters
	o.SimilarityDivisor = c.Genetic.SimilarityDivisor
	o.TimeLimit = c.Run.TimeLimit
	o.MaxGenerations = c.Run.Iterations

	return o
}

// RecursiveOptions translates the recursive section.
func (c Config) RecursiveOptions() recursive.Options {
	s := c.Recursive
	return recursive.Options{
		LeafSize:         s.LeafSize,
		Trials:           s.Trials,
		CoordRange:       s.CoordRange,
		LeafRepair:       s.LeafRepair,
		LeafRepairTiny:   s.LeafRepairTiny,
		MergeRepair:      s.MergeRepair,
		MergeRepairSmall: s.MergeRepairSmall,
	}
}

// ExternalOptions translates the external section. run.iterations caps
// rounds.
func (c Config) ExternalOptions() external.Options {
	return external.Options{
		MaxItems:  c.External.MaxItems,
		RoundTime: c.External.RoundTime,
		TimeLimit: c.Run.TimeLimit,
		MaxRounds: c.Run.Iterations,
	}
}
