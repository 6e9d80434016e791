package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	AgingWeight           float64
	BurstWeight           float64
	PriorityWeight        float64
	AgingTolerance        float64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
// A missing file is not fatal; every key has a default.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")

		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("scheduler.aging_fcfs.aging_weight", 2.0)
		viper.SetDefault("scheduler.aging_fcfs.burst_weight", 0.5)
		viper.SetDefault("scheduler.aging_fcfs.priority_weight", 3.0)
		viper.SetDefault("scheduler.aging_fcfs.tolerance", 0.001)

		if err := viper.ReadInConfig(); err != nil {
			log.Println("config: using defaults:", err)
		}
		config = &SchedulerConfig{
			Port:                  viper.GetInt("port"),
			RoundRobinTimeQuantum: viper.GetInt("scheduler.round_robin.time_quantum"),
			AgingWeight:           viper.GetFloat64("scheduler.aging_fcfs.aging_weight"),
			BurstWeight:           viper.GetFloat64("scheduler.aging_fcfs.burst_weight"),
			PriorityWeight:        viper.GetFloat64("scheduler.aging_fcfs.priority_weight"),
			AgingTolerance:        viper.GetFloat64("scheduler.aging_fcfs.tolerance"),
		}
	})

	return config
}
