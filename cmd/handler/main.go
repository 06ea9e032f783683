/*
 * Copyright 2025 CloudWarm Labs.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/cloudwarm/thermolink/pkg/config"
	"github.com/cloudwarm/thermolink/pkg/events"
	"github.com/cloudwarm/thermolink/pkg/handler"
	"github.com/cloudwarm/thermolink/pkg/lifecycle"
	"github.com/cloudwarm/thermolink/pkg/logger"
	"github.com/cloudwarm/thermolink/pkg/registry"
	"github.com/cloudwarm/thermolink/pkg/svcbus"
	"github.com/cloudwarm/thermolink/pkg/timers"
)

func main() {
	configPath := flag.String("config", "/etc/thermolink/handler.json", "Path to config file")
	flag.Parse()

	ctx := context.Background()

	var cfg handler.Config

	cfgLoader := config.NewConfig(nil)
	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loggerConfig := cfg.Logging
	if loggerConfig == nil {
		loggerConfig = logger.DefaultConfig()
	}

	serviceLogger, err := lifecycle.CreateComponentLogger("frame-handler", loggerConfig)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	busLogger, err := lifecycle.CreateComponentLogger("svcbus", loggerConfig)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	var opts []nats.Option
	if cfg.NATS.Name != "" {
		opts = append(opts, nats.Name(cfg.NATS.Name))
	}

	nc, err := nats.Connect(cfg.NATS.URL, opts...)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer nc.Close()

	caller := svcbus.NewClient(nc, svcbus.NewStaticResolver(cfg.Services), busLogger)
	reg := registry.NewClient(caller)
	emitter := events.NewService(caller, serviceLogger)

	h := handler.New(reg, caller, emitter, timers.NewEngine(), serviceLogger, handler.Options{})

	svc := handler.NewService(&cfg, nc, h, serviceLogger)

	if err := lifecycle.Run(ctx, svc, serviceLogger); err != nil {
		log.Fatalf("Service failed: %v", err)
	}
}
