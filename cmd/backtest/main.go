package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"quote-engine-go/config"
	"quote-engine-go/test/backtest"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	ticks := flag.Int("ticks", 1000, "回测 tick 数")
	seed := flag.Int64("seed", 1, "随机种子")
	flag.Parse()

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	engine, err := backtest.NewEngine(cfg, *seed)
	if err != nil {
		log.Fatalf("init backtest: %v", err)
	}
	res, err := engine.Run(*ticks)
	if err != nil {
		log.Fatalf("run backtest: %v", err)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
