package main

import (
	"os"

	"github.com/Kiarash-sabbaghii-giit/calculator/pkg/logging"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"
)

type CalcApiConfig struct {
	// Logging configs
	Logging logging.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// Evaluation configs
	EvalConfig struct {
		// BatchWorkers is the number of goroutines evaluating one batch
		// request. Zero means one worker.
		BatchWorkers int `json:"batch_workers" yaml:"batch_workers"`
		// MaxBatchSize limits the expression count of a batch request.
		MaxBatchSize int `json:"max_batch_size" yaml:"max_batch_size"`
	} `json:"eval_config" yaml:"eval_config"`
}

var conf CalcApiConfig

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	logging.InitLogger(conf.Logging)

	if conf.EvalConfig.MaxBatchSize <= 0 {
		conf.EvalConfig.MaxBatchSize = 100
	}

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}
