package main

import (
	"fmt"
	"time"

	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/routers"
	"github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/tasks"
	"github.com/netvendor/creditintake/utils/logger"
)

func main() {
	// Set timezone
	conf := config.ServerConfig()
	loc, _ := time.LoadLocation(conf.Timezone)
	time.Local = loc

	// Connect to the database
	DSN := config.DBConfig()
	if err := storage.DBConnection(DSN); err != nil {
		logger.Fatalf("database DBConnection: %s", err)
	}
	defer storage.GetClient().Close()

	// Initialize Redis when configured
	if err := storage.InitializeRedis(); err != nil {
		logger.Fatalf("Redis initialization: %v", err)
	}

	// Start cron jobs
	tasks.StartCronJobs()

	// Run the server
	router := routers.Routes()

	appServer := fmt.Sprintf("%s:%s", conf.Host, conf.Port)
	logger.Infof("Server Running at :%v", appServer)

	logger.Fatalf("%v", router.Run(appServer))
}
