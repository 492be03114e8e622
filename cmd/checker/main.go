package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/graphproof/confcheck/pkg/checker"
	"github.com/graphproof/confcheck/pkg/configuration"
	"github.com/graphproof/confcheck/pkg/logger"
	"github.com/graphproof/confcheck/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	confFile  = flag.String("conf", "", "configuration file to check")
	edgeIDs   = flag.String("edgeids", "", "comma-separated ids of the edges to contract")
	verbosity = flag.Int("v", -1, "verbosity level (0 = info, >= 1 = debug)")
)

func main() {
	flag.Parse()

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	level := zapcore.InfoLevel
	v := *verbosity
	if v < 0 {
		v = viper.GetInt("verbosity")
	}
	if v >= 1 {
		level = zapcore.DebugLevel
	}
	log, err := logger.NewWithLevel(level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *confFile == "" {
		log.Fatal("missing -conf flag")
	}
	path := *confFile
	if _, err := os.Stat(path); err != nil && !filepath.IsAbs(path) {
		path = filepath.Join(viper.GetString("dataDir"), path)
	}

	ids, err := parseEdgeIDs(*edgeIDs)
	if err != nil {
		log.Fatal("parse edge ids", zap.Error(err))
	}

	conf, err := configuration.ReadConfFile(path)
	if err != nil {
		log.Fatal("read configuration file", zap.Error(err))
	}

	edges, err := conf.EdgesFromIDs(ids)
	if err != nil {
		log.Fatal("resolve edge ids", zap.Error(err))
	}

	if err := conf.SetContract(edges, log); err != nil {
		log.Fatal("contract edges", zap.Error(err))
	}

	checker.Check(conf, path, log)
}

// parseEdgeIDs splits a comma-separated id list. Repeated ids collapse to
// one: contracting an edge twice is contracting it once, and the contraction
// set is order-insensitive.
func parseEdgeIDs(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return util.UniqueSorted(ids), nil
}
