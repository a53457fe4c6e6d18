// lobsterinfo reads the ICOHPLIST (and, optionally, COHPCAR) files of several
// LOBSTER calculations, listed in a TOML file, reports the most bonding
// interactions of each, plots their COHPs and collects all the ICOHPs in a
// Parquet file.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if len(os.Args) != 2 {
		log.Fatal("one argument is needed: path of the configuration file")
	}

	cfg, err := loadConfig(os.Args[1])
	if err != nil {
		log.Fatal("can't read the configuration", zap.String("path", os.Args[1]), zap.Error(err))
	}

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}
