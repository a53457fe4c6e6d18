package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lobster "github.com/rmera/golobster"
	"github.com/rmera/golobster/cohpplot"
	"github.com/rmera/golobster/export"
	"github.com/rmera/golobster/source"
	"go.uber.org/zap"
)

// result is what is obtained for one structure.
type result struct {
	name string
	rows []export.IcohpRow
	top  []string
	err  error
}

// run processes all the structures in cfg concurrently. A structure that fails
// is logged and skipped. It returns an error only if no structure could be
// processed or if the export fails.
func run(ctx context.Context, cfg Config, log *zap.Logger) error {
	results := make([]result, len(cfg.Structures))
	var wg sync.WaitGroup
	for k, s := range cfg.Structures {
		wg.Add(1)
		go func(k int, s Structure) {
			defer wg.Done()
			results[k] = process(ctx, cfg, s, log)
		}(k, s)
	}
	wg.Wait()

	var rows []export.IcohpRow
	var ok int
	for _, r := range results {
		if r.err != nil {
			log.Error("structure skipped", zap.String("structure", r.name), zap.Error(r.err))
			continue
		}
		ok++
		rows = append(rows, r.rows...)
	}
	if ok == 0 {
		return fmt.Errorf("none of the %d structures could be processed", len(cfg.Structures))
	}
	if cfg.Parquet != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Parquet), 0755); err != nil {
			return err
		}
		if err := export.WriteFile(cfg.Parquet, rows, cfg.Compression); err != nil {
			return err
		}
		log.Info("ICOHPs exported", zap.String("file", cfg.Parquet), zap.Int("rows", len(rows)))
	}
	return nil
}

// process decodes the files of one structure, logs its most bonding interactions
// and, if requested, plots them.
func process(ctx context.Context, cfg Config, s Structure, log *zap.Logger) result {
	res := result{name: s.Name}
	listName := lobster.ICOHPLISTName
	carName := lobster.COHPCARName
	if cfg.Coops {
		listName = lobster.ICOOPLISTName
		carName = lobster.COOPCARName
	}
	src := source.Local{Dir: s.Dir}
	found, err := lobster.FindFile(s.Dir, listName)
	if err != nil {
		res.err = err
		return res
	}
	list, err := source.Icohplist(ctx, src, cfg.Coops, filepath.Base(found))
	if err != nil {
		res.err = err
		return res
	}
	res.rows = export.IcohpRows(s.Name, list)
	ranked := list.Ranked(lobster.SpinUp)
	if len(ranked) > cfg.Top {
		ranked = ranked[:cfg.Top]
	}
	res.top = ranked
	for i, l := range ranked {
		b, _ := list.Bond(l)
		log.Info("bond",
			zap.String("structure", s.Name),
			zap.Int("rank", i+1),
			zap.String("label", l),
			zap.Float64("length", b.Length),
			zap.Int("equivalent", b.NumBonds),
			zap.Float64("icohp_up", b.ICOHP[lobster.SpinUp]),
		)
	}
	log.Info("structure done",
		zap.String("structure", s.Name),
		zap.Bool("spin_polarized", list.SpinPolarized()),
		zap.Int("bonds", list.Len()),
		zap.Float64("total_up", list.Total(lobster.SpinUp)),
	)
	if cfg.PlotDir == "" {
		return res
	}
	found, err = lobster.FindFile(s.Dir, carName)
	if err != nil {
		log.Warn("no curves to plot", zap.String("structure", s.Name), zap.Error(err))
		return res
	}
	car, err := source.Cohpcar(ctx, src, cfg.Coops, filepath.Base(found))
	if err != nil {
		log.Warn("can't read the curves", zap.String("structure", s.Name), zap.Error(err))
		return res
	}
	labels := make([]string, 0, len(ranked))
	for _, l := range ranked {
		if _, ok := car.Bond(l); ok {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 {
		labels = []string{lobster.AverageLabel}
	}
	if err := os.MkdirAll(cfg.PlotDir, 0755); err != nil {
		log.Warn("can't create the plot directory", zap.String("dir", cfg.PlotDir), zap.Error(err))
		return res
	}
	o := cohpplot.DefaultOptions(car)
	o.Title = fmt.Sprintf("%s %s", s.Name, o.Title)
	plotname := filepath.Join(cfg.PlotDir, plotFileName(s.Name))
	if err := cohpplot.Save(car, labels, o, plotname); err != nil {
		log.Warn("can't plot", zap.String("structure", s.Name), zap.Error(err))
		return res
	}
	log.Info("plot saved", zap.String("structure", s.Name), zap.String("file", plotname))
	return res
}

// plotFileName returns a file name for the plot of the structure name, which can
// be a path when the name defaults to the directory.
func plotFileName(name string) string {
	name = strings.Trim(filepath.ToSlash(filepath.Clean(name)), "/")
	name = strings.NewReplacer("/", "_", ":", "_").Replace(name)
	if name == "" || name == "." {
		name = "structure"
	}
	return name + ".png"
}
